package cmd

import (
	"flag"

	"github.com/etnz/corrmap/config"
	"github.com/etnz/corrmap/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the application for the
// global flags of fs and every command.
//
// Symbols are predicted from the built-in universe.
func Completion(fs *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(fs),
	}
	for _, c := range Commands {
		sub := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(sub)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(sub)}
	}
	root.Sub["topic"].Args = predict.Set(append(docs.Topics(), docs.Index))
	return root
}

// flagPredictors predicts the values of the known flags, and anything for the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch f.Name {
		case "s":
			predictors[f.Name] = predict.Set(builtinSymbols())
		case "universe":
			predictors[f.Name] = predict.Files("*.yaml")
		case "out", "cache-dir":
			predictors[f.Name] = predict.Dirs("*")
		case "provider":
			predictors[f.Name] = predict.Set{"yahoo", "eodhd"}
		case "palette":
			predictors[f.Name] = predict.Set{"vlag", "coolwarm"}
		case "log-level":
			predictors[f.Name] = predict.Set{"debug", "info", "warn", "error"}
		default:
			if isBool(f) {
				predictors[f.Name] = predict.Nothing
			} else {
				predictors[f.Name] = predict.Something
			}
		}
	})
	return predictors
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func builtinSymbols() []string {
	cfg, err := config.Default()
	if err != nil {
		return nil
	}
	u, err := cfg.Universe()
	if err != nil {
		return nil
	}
	symbols := make([]string, 0, len(u.Symbols()))
	for _, s := range u.Symbols() {
		symbols = append(symbols, s.String())
	}
	return symbols
}
