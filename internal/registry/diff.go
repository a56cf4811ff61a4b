package registry

import (
	"context"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// CheckDiff describes how one check changed between two runs. Chunks carry
// the textual description changes; they are empty when only the status moved
// or the wording is identical.
type CheckDiff struct {
	Check      string      `json:"check"`
	BaseStatus string      `json:"base_status,omitempty"`
	HeadStatus string      `json:"head_status,omitempty"`
	Chunks     []DiffChunk `json:"chunks,omitempty"`
}

// DiffChunk is one textual change in a check's description.
type DiffChunk struct {
	Type    string `json:"type"` // "added" or "removed"
	Content string `json:"content"`
}

// RunDiff is the comparison of two stored runs.
type RunDiff struct {
	BaseID     string      `json:"base_id"`
	HeadID     string      `json:"head_id"`
	BaseScore  int         `json:"base_score"`
	HeadScore  int         `json:"head_score"`
	ScoreDelta int         `json:"score_delta"`
	Changes    []CheckDiff `json:"changes"`
}

// DiffRuns loads both runs and reports every check whose status or
// description changed between them. Checks only present in one run appear
// with the other side's status empty.
func (r *Registry) DiffRuns(ctx context.Context, baseID, headID string) (*RunDiff, error) {
	base, err := r.Get(ctx, baseID)
	if err != nil {
		return nil, err
	}
	head, err := r.Get(ctx, headID)
	if err != nil {
		return nil, err
	}

	diff := &RunDiff{
		BaseID:     base.ID,
		HeadID:     head.ID,
		BaseScore:  base.Score,
		HeadScore:  head.Score,
		ScoreDelta: head.Score - base.Score,
	}

	baseReport := base.Envelope.Report
	headReport := head.Envelope.Report

	seen := make(map[string]bool)
	names := append([]string{}, baseReport.Names()...)
	for _, n := range headReport.Names() {
		if baseReport.Get(n) == nil {
			names = append(names, n)
		}
	}

	dmp := diffmatchpatch.New()
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		baseRes := baseReport.Get(name)
		headRes := headReport.Get(name)

		cd := CheckDiff{Check: name}
		var baseDesc, headDesc string
		if baseRes != nil {
			cd.BaseStatus = string(baseRes.Status)
			baseDesc = baseRes.Description
		}
		if headRes != nil {
			cd.HeadStatus = string(headRes.Status)
			headDesc = headRes.Description
		}

		if cd.BaseStatus == cd.HeadStatus && baseDesc == headDesc {
			continue
		}

		if baseDesc != headDesc {
			diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(baseDesc, headDesc, true))
			for _, d := range diffs {
				var chunkType string
				switch d.Type {
				case diffmatchpatch.DiffInsert:
					chunkType = "added"
				case diffmatchpatch.DiffDelete:
					chunkType = "removed"
				default:
					continue
				}
				if strings.TrimSpace(d.Text) != "" {
					cd.Chunks = append(cd.Chunks, DiffChunk{Type: chunkType, Content: d.Text})
				}
			}
		}

		diff.Changes = append(diff.Changes, cd)
	}

	return diff, nil
}
