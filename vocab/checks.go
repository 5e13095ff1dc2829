package vocab

import (
	"encoding/json"
	"fmt"
)

// TinEyeResults is the outcome of a reverse image search.
type TinEyeResults string

const (
	TinEyeZeroMatches TinEyeResults = "0 matches"
	TinEyeNoMatches   TinEyeResults = "no matches"
	TinEyeMatchFound  TinEyeResults = "matches found"
)

// UnmarshalJSON rejects any value outside the three TinEye outcomes.
func (r *TinEyeResults) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := TinEyeResults(raw); v {
	case TinEyeZeroMatches, TinEyeNoMatches, TinEyeMatchFound:
		*r = v
		return nil
	}
	return fmt.Errorf("unknown TinEye result %q", raw)
}

// AiCheckResults is the outcome of the AI-generated image check.
type AiCheckResults string

const (
	AiCheckHuman AiCheckResults = "human"
	AiCheckAI    AiCheckResults = "ai"
)

// UnmarshalJSON rejects any value other than "human" or "ai".
func (r *AiCheckResults) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := AiCheckResults(raw); v {
	case AiCheckHuman, AiCheckAI:
		*r = v
		return nil
	}
	return fmt.Errorf("unknown AI check result %q", raw)
}
