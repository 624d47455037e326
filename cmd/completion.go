package cmd

import (
	"flag"

	"github.com/etnz/rental/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application, whose global
// flags are defined in fs.
func Completion(fs *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(fs),
	}
	for _, name := range builtins {
		root.Sub[name] = &complete.Command{}
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	if topics, err := docs.Topics(); err == nil {
		names := predict.Set{docs.Index, "*"}
		for _, t := range topics {
			names = append(names, t.Name)
		}
		root.Sub["topic"].Args = names
	}
	return root
}

// flagPredictors predicts the values of every flag in fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		flags[f.Name] = predictFlag(f)
	})
	return flags
}

func predictFlag(f *flag.Flag) complete.Predictor {
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch f.Name {
	case "config":
		return predict.Files("*.toml")
	default:
		return predict.Something
	}
}
