package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/schema"
)

// translateCast merges one parsed cast file into the agnostic model.
// Capability blocks accumulate in declaration order across files; the
// singleton record and demo blocks may appear at most once overall.
func (l *Loader) translateCast(model *config.Model, cast *schema.CastConfig, filePath string) error {
	for _, p := range cast.Producers {
		model.Producers = append(model.Producers, &config.Capability{
			Type:        p.Type,
			Name:        p.Name,
			Arguments:   argumentsBody(p.Arguments),
			SourceRange: filePath,
		})
	}
	for _, d := range cast.Displayers {
		model.Displayers = append(model.Displayers, &config.Capability{
			Type:        d.Type,
			Name:        d.Name,
			Arguments:   argumentsBody(d.Arguments),
			SourceRange: filePath,
		})
	}

	if cast.Record != nil {
		if model.Record != nil {
			return fmt.Errorf("duplicate record block in %s: the record may be declared only once", filePath)
		}
		spec, err := l.translateRecord(cast.Record, filePath)
		if err != nil {
			return err
		}
		model.Record = spec
	}

	if cast.Demo != nil {
		if model.Demo != nil {
			return fmt.Errorf("duplicate demo block in %s: run options may be declared only once", filePath)
		}
		model.Demo = &config.DemoSpec{Runs: cast.Demo.Runs}
	}

	return nil
}

// argumentsBody unwraps the raw body of an arguments block, or nil when the
// block is absent.
func argumentsBody(args *schema.Args) hcl.Body {
	if args == nil {
		return nil
	}
	return args.Body
}
