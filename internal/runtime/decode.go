package runtime

import (
	"fmt"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// decode interprets a suspended value. With progress tracking disabled the
// value is the partial result itself. With it enabled, the value must be a
// (progress, result) pair: a domain.Yield, a pointer to one, or a map shaped
// like one (the form loosely typed adapters such as the NDJSON process
// runner produce).
func decode(value any, tracked bool) (domain.Yield, error) {
	if !tracked {
		return domain.Yield{Result: value}, nil
	}

	switch v := value.(type) {
	case domain.Yield:
		return v, nil
	case *domain.Yield:
		if v != nil {
			return *v, nil
		}
	case map[string]any:
		var y domain.Yield
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &y,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return domain.Yield{}, fmt.Errorf("%w: %v", domain.ErrMalformedYield, err)
		}
		if err := dec.Decode(v); err != nil {
			return domain.Yield{}, fmt.Errorf("%w: %v", domain.ErrMalformedYield, err)
		}
		return y, nil
	}

	return domain.Yield{}, fmt.Errorf("%w: expected a (progress, result) pair, got %T", domain.ErrMalformedYield, value)
}
