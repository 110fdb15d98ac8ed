package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/fanoutgo/internal/config"
	"github.com/specialistvlad/fanoutgo/internal/ctxlog"
)

// ValidateModel performs a strict parity check between a cast manifest and
// the Go code compiled into the binary: every declared capability type must
// have a registered factory, and instance names must be unique per kind.
// It reports every problem at once rather than stopping at the first.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	if model == nil {
		return nil
	}
	logger := ctxlog.FromContext(ctx)
	var errs []string

	seenProducers := make(map[string]struct{})
	for _, decl := range model.Producers {
		if _, ok := r.ProducerType(decl.Type); !ok {
			errs = append(errs, fmt.Sprintf("producer '%s.%s': no producer type '%s' is compiled into this binary", decl.Type, decl.Name, decl.Type))
		}
		if _, dup := seenProducers[decl.Name]; dup {
			errs = append(errs, fmt.Sprintf("producer instance name '%s' declared more than once", decl.Name))
		}
		seenProducers[decl.Name] = struct{}{}
	}

	seenDisplayers := make(map[string]struct{})
	for _, decl := range model.Displayers {
		if _, ok := r.DisplayerType(decl.Type); !ok {
			errs = append(errs, fmt.Sprintf("displayer '%s.%s': no displayer type '%s' is compiled into this binary", decl.Type, decl.Name, decl.Type))
		}
		if _, dup := seenDisplayers[decl.Name]; dup {
			errs = append(errs, fmt.Sprintf("displayer instance name '%s' declared more than once", decl.Name))
		}
		seenDisplayers[decl.Name] = struct{}{}
	}

	if len(errs) > 0 {
		return fmt.Errorf("cast validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Cast validation passed.", "producers", len(model.Producers), "displayers", len(model.Displayers))
	return nil
}
