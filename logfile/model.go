package logfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spektr-org/loginspector/vocab"
)

// ============================================================================
// LOG RECORD MODEL: One JSON document per reviewed page
// ============================================================================
// Field names are matched exactly (case-sensitive). Unknown fields are ignored.
// Fields added in later log versions are optional and default to false / "".
// ============================================================================

// LogFile is a successfully parsed log and the file it came from.
type LogFile struct {
	FileName string `json:"fileName"`
	Log      Log    `json:"log"`
}

// Log is the decoded content of one log file.
type Log struct {
	Page     string       `json:"page"`
	Features []LogFeature `json:"features"`
}

// Hub returns the hub part of the log's page.
func (l Log) Hub() string { return vocab.HubOf(l.Page) }

// LogFeature is one reviewed submission.
type LogFeature struct {
	IsPicked               bool                 `json:"isPicked"`
	PostLink               string               `json:"postLink"`
	UserName               string               `json:"userName"`
	UserAlias              string               `json:"userAlias"`
	UserLevel              vocab.MembershipCase `json:"userLevel"`
	UserIsTeammate         bool                 `json:"userIsTeammate"`
	TagSource              vocab.TagSourceCase  `json:"tagSource"`
	PhotoFeaturedOnPage    bool                 `json:"photoFeaturedOnPage"`
	PhotoFeaturedOnHub     bool                 `json:"photoFeaturedOnHub"`
	PhotoLastFeaturedOnHub string               `json:"photoLastFeaturedOnHub"`
	PhotoLastFeaturedPage  string               `json:"photoLastFeaturedPage"`
	FeatureDescription     string               `json:"featureDescription"`
	UserHasFeaturesOnPage  bool                 `json:"userHasFeaturesOnPage"`
	LastFeaturedOnPage     string               `json:"lastFeaturedOnPage"`
	FeatureCountOnPage     string               `json:"featureCountOnPage"`
	FeatureCountOnRawPage  string               `json:"featureCountOnRawPage"`
	UserHasFeaturesOnHub   bool                 `json:"userHasFeaturesOnHub"`
	LastFeaturedOnHub      string               `json:"lastFeaturedOnHub"`
	LastFeaturedPage       string               `json:"lastFeaturedPage"`
	FeatureCountOnHub      string               `json:"featureCountOnHub"`
	FeatureCountOnRawHub   string               `json:"featureCountOnRawHub"`
	TooSoonToFeatureUser   bool                 `json:"tooSoonToFeatureUser"`
	TinEyeResults          vocab.TinEyeResults  `json:"tinEyeResults"`
	AiCheckResults         vocab.AiCheckResults `json:"aiCheckResults"`
	PersonalMessage        string               `json:"personalMessage"`
}

var errMissing = errors.New("required field is missing")

var errEmptyPage = errors.New("page must not be empty")

// fieldError carries the JSON path of the offending field up to DecodeError.
type fieldError struct {
	Path string
	Err  error
}

func (e *fieldError) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *fieldError) Unwrap() error { return e.Err }

func prefixPath(prefix string, err error) error {
	var fe *fieldError
	if errors.As(err, &fe) {
		return &fieldError{Path: prefix + "." + fe.Path, Err: fe.Err}
	}
	return &fieldError{Path: prefix, Err: err}
}

// objectFields splits a JSON object into its raw members.
func objectFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("expected a JSON object, got null")
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// required decodes fields[name] into dst; absent or null is an error.
func required(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return &fieldError{Path: name, Err: errMissing}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return prefixPath(name, err)
	}
	return nil
}

// optional decodes fields[name] into dst when present; dst keeps its zero value otherwise.
func optional(fields map[string]json.RawMessage, name string, dst any) error {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return prefixPath(name, err)
	}
	return nil
}

// UnmarshalJSON decodes a feature, enforcing required fields and defaulting optional ones.
func (f *LogFeature) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}

	var out LogFeature
	steps := []struct {
		name     string
		dst      any
		optional bool
	}{
		{"isPicked", &out.IsPicked, false},
		{"postLink", &out.PostLink, false},
		{"userName", &out.UserName, false},
		{"userAlias", &out.UserAlias, false},
		{"userLevel", &out.UserLevel, false},
		{"userIsTeammate", &out.UserIsTeammate, false},
		{"tagSource", &out.TagSource, false},
		{"photoFeaturedOnPage", &out.PhotoFeaturedOnPage, false},
		{"photoFeaturedOnHub", &out.PhotoFeaturedOnHub, true},
		{"photoLastFeaturedOnHub", &out.PhotoLastFeaturedOnHub, true},
		{"photoLastFeaturedPage", &out.PhotoLastFeaturedPage, true},
		{"featureDescription", &out.FeatureDescription, false},
		{"userHasFeaturesOnPage", &out.UserHasFeaturesOnPage, false},
		{"lastFeaturedOnPage", &out.LastFeaturedOnPage, false},
		{"featureCountOnPage", &out.FeatureCountOnPage, false},
		{"featureCountOnRawPage", &out.FeatureCountOnRawPage, false},
		{"userHasFeaturesOnHub", &out.UserHasFeaturesOnHub, false},
		{"lastFeaturedOnHub", &out.LastFeaturedOnHub, false},
		{"lastFeaturedPage", &out.LastFeaturedPage, false},
		{"featureCountOnHub", &out.FeatureCountOnHub, false},
		{"featureCountOnRawHub", &out.FeatureCountOnRawHub, false},
		{"tooSoonToFeatureUser", &out.TooSoonToFeatureUser, false},
		{"tinEyeResults", &out.TinEyeResults, false},
		{"aiCheckResults", &out.AiCheckResults, false},
		{"personalMessage", &out.PersonalMessage, true},
	}
	for _, s := range steps {
		if s.optional {
			err = optional(fields, s.name, s.dst)
		} else {
			err = required(fields, s.name, s.dst)
		}
		if err != nil {
			return err
		}
	}

	*f = out
	return nil
}

// UnmarshalJSON decodes a log. Both page and features are required.
func (l *Log) UnmarshalJSON(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}

	var out Log
	if err := required(fields, "page", &out.Page); err != nil {
		return err
	}
	if out.Page == "" {
		return &fieldError{Path: "page", Err: errEmptyPage}
	}

	var rawFeatures []json.RawMessage
	if err := required(fields, "features", &rawFeatures); err != nil {
		return err
	}
	out.Features = make([]LogFeature, 0, len(rawFeatures))
	for i, raw := range rawFeatures {
		var feature LogFeature
		if err := json.Unmarshal(raw, &feature); err != nil {
			return prefixPath(fmt.Sprintf("features[%d]", i), err)
		}
		out.Features = append(out.Features, feature)
	}

	*l = out
	return nil
}

// Decode parses one serialized log document.
// Failures are returned as *DecodeError with an empty FileName; the loader fills it in.
func Decode(data []byte) (Log, error) {
	var l Log
	if err := json.Unmarshal(data, &l); err != nil {
		return Log{}, newDecodeError("", err)
	}
	return l, nil
}

// Encode serializes a log with every field present, defaults included.
func Encode(l Log) ([]byte, error) {
	if l.Features == nil {
		l.Features = []LogFeature{}
	}
	return json.MarshalIndent(l, "", "  ")
}
