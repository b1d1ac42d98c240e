package services

import (
	"fmt"
	"strings"

	"recruitment-agency-api/models"
)

// Match reasons surfaced to the operator on UPDATE rows.
const (
	MatchReasonIdentityNumber  = "identity-number"
	MatchReasonEmail           = "email"
	MatchReasonPhone           = "phone"
	MatchReasonNameNationality = "name-nationality"
)

// CandidateIndex holds the existing records keyed by every field the
// matcher can fire on. Built once per import request and read-only after.
type CandidateIndex struct {
	byPassport map[string][]*models.CV
	byEmail    map[string][]*models.CV
	byPhone    map[string][]*models.CV
	byNameNat  map[string][]*models.CV
}

// NewCandidateIndex indexes the given records. Records missing a key field
// simply don't participate in that rule.
func NewCandidateIndex(existing []models.CV) *CandidateIndex {
	idx := &CandidateIndex{
		byPassport: make(map[string][]*models.CV),
		byEmail:    make(map[string][]*models.CV),
		byPhone:    make(map[string][]*models.CV),
		byNameNat:  make(map[string][]*models.CV),
	}
	for i := range existing {
		cv := &existing[i]
		if cv.PassportNumber != nil {
			if k := foldKey(*cv.PassportNumber); k != "" {
				idx.byPassport[k] = append(idx.byPassport[k], cv)
			}
		}
		if cv.Email != nil {
			if k := foldKey(*cv.Email); k != "" {
				idx.byEmail[k] = append(idx.byEmail[k], cv)
			}
		}
		if cv.Phone != nil {
			if k := digitsOnly(*cv.Phone); k != "" {
				idx.byPhone[k] = append(idx.byPhone[k], cv)
			}
		}
		if cv.Nationality != nil && cv.FullName != "" {
			k := foldKey(cv.FullName) + "|" + foldKey(*cv.Nationality)
			idx.byNameNat[k] = append(idx.byNameNat[k], cv)
		}
	}
	return idx
}

// Classify decides how an incoming row relates to the existing records.
// Rules fire in fixed precedence so the outcome is deterministic and the
// operator-visible reason names the strongest signal that matched. The
// function never fails: every problem is an ERROR outcome.
func Classify(fields models.CandidateFields, idx *CandidateIndex, rowNumber int) models.RowOutcome {
	out := models.RowOutcome{RowNumber: rowNumber, Fields: fields}

	hasPassport := fields.PassportNumber != nil && foldKey(*fields.PassportNumber) != ""
	if fields.FullName == "" && !hasPassport {
		out.Kind = models.OutcomeError
		out.Reason = "row has no full name and no passport number; nothing to identify the candidate by"
		return out
	}

	type rule struct {
		reason string
		hits   []*models.CV
	}
	var rules []rule
	if hasPassport {
		rules = append(rules, rule{MatchReasonIdentityNumber, idx.byPassport[foldKey(*fields.PassportNumber)]})
	}
	if fields.Email != nil {
		if k := foldKey(*fields.Email); k != "" {
			rules = append(rules, rule{MatchReasonEmail, idx.byEmail[k]})
		}
	}
	if fields.Phone != nil {
		if k := digitsOnly(*fields.Phone); k != "" {
			rules = append(rules, rule{MatchReasonPhone, idx.byPhone[k]})
		}
	}
	if fields.FullName != "" && fields.Nationality != nil {
		k := foldKey(fields.FullName) + "|" + foldKey(*fields.Nationality)
		rules = append(rules, rule{MatchReasonNameNationality, idx.byNameNat[k]})
	}

	for _, r := range rules {
		switch len(r.hits) {
		case 0:
			continue
		case 1:
			target := r.hits[0]
			if !fields.ChangedFrom(target) {
				out.Kind = models.OutcomeSkip
				out.ExistingID = target.ID
				out.Reason = "identical to existing record #" + fmt.Sprint(target.ID)
				return out
			}
			out.Kind = models.OutcomeUpdate
			out.ExistingID = target.ID
			out.MatchReason = r.reason
			return out
		default:
			out.Kind = models.OutcomeError
			out.Reason = fmt.Sprintf("%s matches multiple existing records (%d); resolve the duplicates before importing", r.reason, len(r.hits))
			return out
		}
	}

	out.Kind = models.OutcomeNew
	return out
}

func foldKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func digitsOnly(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
