package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/gradecalc/core"
	"github.com/trezcool/gradecalc/core/grade"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	in         io.Reader
	out        io.Writer
	svc        grade.Service
	validate   *validator.Validate
	translator ut.Translator
	styles     styles
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	grade.InitValidators(validate, translator)
	return validate, translator
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  needed -current N -desired N -weight N [-projection]  - score needed on the remaining component")
	fmt.Fprintln(cli.out, "  predict -current N -score N -weight N                 - final grade for a component score")
	fmt.Fprintln(cli.out, "  convert -percentage N | -letter L | -gpa N           - convert between percentage, letter & GPA")
	fmt.Fprintln(cli.out, "  suggest -needed N                                     - how hard a needed score is")
	fmt.Fprintln(cli.out, "  weighted -file FILE                                   - grade of a weighted scheme (YAML; - reads stdin)")
	fmt.Fprintln(cli.out, "  scale                                                 - print the grade scale")
}

// percentFlag is a float flag that remembers whether it was set.
type percentFlag struct {
	val *float64
}

func (f *percentFlag) String() string {
	if f.val == nil {
		return ""
	}
	return strconv.FormatFloat(*f.val, 'f', -1, 64)
}

func (f *percentFlag) Set(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("must be a number")
	}
	f.val = &v
	return nil
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	switch args[1] {
	case "needed":
		var current, desired, weight percentFlag
		cmd := cli.newFlagSet("needed")
		cmd.Var(&current, "current", "Your current grade (%).")
		cmd.Var(&desired, "desired", "The final grade you want (%).")
		cmd.Var(&weight, "weight", "Weight of the remaining component (% of the final grade).")
		projection := cmd.Bool("projection", false, "Also print the final grade for component scores from 0 to 100.")
		if err := parse(cmd, args[2:]); err != nil {
			return err
		}
		data := grade.NeededGrade{Current: current.val, Desired: desired.val, Weight: weight.val}
		if err := data.Validate(cli.validate); err != nil {
			return cli.validationError(err)
		}
		cli.printNeeded(cli.svc.Needed(data), *projection)
		return nil

	case "predict":
		var current, score, weight percentFlag
		cmd := cli.newFlagSet("predict")
		cmd.Var(&current, "current", "Your current grade (%).")
		cmd.Var(&score, "score", "Your score on the remaining component (%).")
		cmd.Var(&weight, "weight", "Weight of the remaining component (% of the final grade).")
		if err := parse(cmd, args[2:]); err != nil {
			return err
		}
		data := grade.PredictedGrade{Current: current.val, Score: score.val, Weight: weight.val}
		if err := data.Validate(cli.validate); err != nil {
			return cli.validationError(err)
		}
		cli.printPredicted(cli.svc.Predict(data))
		return nil

	case "convert":
		var data grade.Conversion
		cmd := cli.newFlagSet("convert")
		cmd.StringVar(&data.Percentage, "percentage", "", "A percentage to convert.")
		cmd.StringVar(&data.Letter, "letter", "", "A letter grade to convert.")
		cmd.StringVar(&data.GPA, "gpa", "", "A GPA to convert.")
		if err := parse(cmd, args[2:]); err != nil {
			return err
		}
		if err := data.Validate(cli.validate); err != nil {
			return cli.validationError(err)
		}
		res, err := cli.svc.Convert(data)
		if err != nil {
			return errors.Wrap(err, "converting grade")
		}
		cli.printConversion(res)
		return nil

	case "suggest":
		var data grade.SuggestionRequest
		cmd := cli.newFlagSet("suggest")
		cmd.StringVar(&data.Needed, "needed", "", "The score needed on the remaining component (%).")
		if err := parse(cmd, args[2:]); err != nil {
			return err
		}
		if err := data.Validate(cli.validate); err != nil {
			return cli.validationError(err)
		}
		needed, err := strconv.ParseFloat(data.Needed, 64)
		if err != nil {
			return errors.Wrap(err, "parsing needed grade")
		}
		cli.printSuggestion(cli.svc.Suggest(needed))
		return nil

	case "weighted":
		cmd := cli.newFlagSet("weighted")
		file := cmd.String("file", "", "YAML file describing the grading scheme; - reads stdin.")
		if err := parse(cmd, args[2:]); err != nil {
			return err
		}
		if *file == "" {
			cmd.Usage()
			return errHelp
		}
		data, err := cli.loadScheme(*file)
		if err != nil {
			return err
		}
		if err := data.Validate(cli.validate); err != nil {
			return cli.validationError(err)
		}
		cli.printWeighted(cli.svc.Weighted(data))
		return nil

	case "scale":
		cli.printScale(cli.svc.Scale())
		return nil

	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) loadScheme(path string) (grade.WeightedGrade, error) {
	if path == "-" {
		return decodeScheme(cli.in)
	}
	f, err := os.Open(path)
	if err != nil {
		return grade.WeightedGrade{}, errors.Wrap(err, "opening scheme")
	}
	defer f.Close()
	return decodeScheme(f)
}

// validationError flattens validation errors into a single error, sorted by field.
func (cli *commandLine) validationError(err error) error {
	switch vErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		fields := core.TranslateErrors(vErr, cli.translator)
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		msgs := make([]string, len(keys))
		for i, k := range keys {
			msgs[i] = k + ": " + fields[k]
		}
		return errors.New(strings.Join(msgs, "; "))
	case *core.ValidationError:
		if len(vErr.Fields) > 1 {
			msgs := make([]string, len(vErr.Fields))
			for i, fe := range vErr.Fields {
				msgs[i] = fe.Field + ": " + fe.Error
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return vErr
	}
	return err
}
