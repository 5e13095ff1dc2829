package engine

import (
	"fmt"

	"github.com/spektr-org/loginspector/diagnostics"
	"github.com/spektr-org/loginspector/logfile"
	"github.com/spektr-org/loginspector/vocab"
)

// CheckDataQuality reports suspicious but structurally valid features to sink
// and returns how many warnings were raised. Nothing is dropped.
func CheckDataQuality(logs []logfile.LogFile, sink diagnostics.Sink) int {
	if sink == nil {
		sink = diagnostics.Discard
	}

	n := 0
	for _, lf := range logs {
		hub := vocab.HubOf(lf.Log.Page)
		for _, f := range lf.Log.Features {
			for _, e := range featureWarnings(hub, f) {
				e.FileName = lf.FileName
				e.UserName = f.UserName
				e.Page = lf.Log.Page
				sink.Report(e)
				n++
			}
		}
	}
	return n
}

func featureWarnings(hub string, f logfile.LogFeature) []diagnostics.Entry {
	var out []diagnostics.Entry

	switch {
	case f.UserLevel == vocab.MembershipNone:
		out = append(out, diagnostics.Entry{
			Kind:    diagnostics.KindNoneMembership,
			Value:   f.UserLevel.String(),
			Message: "feature has no membership level",
		})
	case !vocab.MembershipCaseValidFor(hub, f.UserLevel):
		out = append(out, diagnostics.Entry{
			Kind:    diagnostics.KindInvalidMembership,
			Value:   f.UserLevel.String(),
			Message: fmt.Sprintf("membership level not valid for hub %q", hub),
		})
	}

	if !vocab.TagSourceCaseValidFor(hub, f.TagSource) {
		out = append(out, diagnostics.Entry{
			Kind:    diagnostics.KindInvalidTagSource,
			Value:   f.TagSource.String(),
			Message: fmt.Sprintf("tag source not valid for hub %q", hub),
		})
	}
	return out
}
