package lexis

import "encoding/json"

// MarshalJSON renders the wire name ("noun"/"verb"/"adjective"/"").
func (p PartOfSpeech) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON parses the wire name via ParsePartOfSpeech.
func (p *PartOfSpeech) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParsePartOfSpeech(s)
	return nil
}
