package main

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/gradecalc/core/grade"
)

// decodeScheme reads a grading scheme such as:
//
//	target: 90
//	components:
//	  - name: Homework
//	    score: 90
//	    weight: 20
//	  - name: Final Exam
//	    weight: 30
func decodeScheme(r io.Reader) (grade.WeightedGrade, error) {
	var scheme grade.WeightedGrade
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&scheme); err != nil {
		if err == io.EOF {
			return scheme, errors.New("empty scheme")
		}
		return scheme, errors.Wrap(err, "decoding scheme")
	}
	return scheme, nil
}
