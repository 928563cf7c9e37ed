package config

import (
	"fmt"

	"github.com/cognicore/keyphrase/pkg/keyphrase"
	"github.com/cognicore/keyphrase/pkg/keyphrase/grammar"
	"github.com/cognicore/keyphrase/pkg/keyphrase/internalerr"
	"github.com/cognicore/keyphrase/pkg/keyphrase/lang"
	"github.com/cognicore/keyphrase/pkg/keyphrase/segment"
)

// Loader reads all configuration files and assembles extractor
// options. Paths left empty fall back to defaults.
type Loader struct {
	PipelinePath string
	StoplistPath string
	DictPath     string
}

// Load builds keyphrase.Options around the given engine.
func (l *Loader) Load(engine segment.Engine) (keyphrase.Options, error) {
	opts := keyphrase.Options{Engine: engine, MaxNgram: 1}

	if l.PipelinePath != "" {
		p, err := LoadPipeline(l.PipelinePath)
		if err != nil {
			return opts, fmt.Errorf("load pipeline config: %w", err)
		}
		profile, ok := lang.ByName(p.Language)
		if !ok {
			return opts, fmt.Errorf("%w: unknown language %q", internalerr.ErrInvalidConfig, p.Language)
		}
		opts.Profile = profile
		opts.MaxNgram = p.MaxNgram
		opts.TopK = p.TopK
		opts.Workers = p.Workers
		opts.HashtagSpacing = p.HashtagSpacing
	} else {
		opts.Profile = lang.Chinese()
	}

	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return opts, fmt.Errorf("load stoplist: %w", err)
		}
		opts.Stopwords = sl.Terms
	}

	if l.DictPath != "" {
		dict, err := LoadDict(l.DictPath)
		if err != nil {
			return opts, fmt.Errorf("load dictionary: %w", err)
		}
		opts.Dict = grammar.PhraseDict(dict)
	}

	return opts, nil
}
