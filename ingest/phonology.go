package ingest

import (
	"github.com/vellum-lang/vellum/internal/vellumerr"
	"github.com/vellum-lang/vellum/phon"
)

// buildPhonology parses every raw reference string in f and merges the
// result into dst, key-wise, with values from f overwriting dst's existing
// keys (the phonetics merge rule from spec.md §6).
func buildPhonology(dst phon.LexPhonology, f PhonologyFile) error {
	for key, refs := range f.Groups {
		r, err := parseGroupKey(key)
		if err != nil {
			return err
		}
		parsed, err := parseRefs(refs)
		if err != nil {
			return err
		}
		dst.Groups[r] = parsed
	}
	for key, refs := range f.LexisTypes {
		parsed, err := parseRefs(refs)
		if err != nil {
			return err
		}
		dst.LexisTypes[key] = parsed
	}
	return nil
}

func parseRefs(refs []string) ([]phon.PhoneticReference, error) {
	out := make([]phon.PhoneticReference, len(refs))
	for i, s := range refs {
		ref, err := phon.ParsePhoneticReference(s)
		if err != nil {
			return nil, vellumerr.NewLoadError(s, err)
		}
		out[i] = ref
	}
	return out, nil
}
