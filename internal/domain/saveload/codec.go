package saveload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"

	"github.com/GriffinCanCode/skullgate/internal/domain/progress"
)

var ErrUnknownCodec = errors.New("unknown codec")

// Codec turns the aggregate into bytes and back. Encoding the same
// aggregate twice must produce the same bytes.
type Codec interface {
	Name() string
	Encode(p *progress.PlayerProgress) ([]byte, error)
	Decode(data []byte) (*progress.PlayerProgress, error)
}

// NewCodec returns the codec registered under name. An empty name selects JSON.
func NewCodec(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// JSONCodec encodes with sonic in encoding/json compatible mode
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(p *progress.PlayerProgress) ([]byte, error) {
	return sonic.ConfigStd.Marshal(p)
}

func (JSONCodec) Decode(data []byte) (*progress.PlayerProgress, error) {
	var p progress.PlayerProgress
	if err := sonic.ConfigStd.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// YAMLCodec produces human-editable save files
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(p *progress.PlayerProgress) ([]byte, error) {
	return yaml.Marshal(p)
}

func (YAMLCodec) Decode(data []byte) (*progress.PlayerProgress, error) {
	var p progress.PlayerProgress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
