package postgres

import (
	"fmt"
	"strings"

	"collabhub/internal/core/domain"
)

// whereBuilder assembles a conjunctive WHERE clause with positional
// parameters.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add appends a clause; %d in clause is replaced with the parameter index.
func (w *whereBuilder) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(clause, len(w.args)))
}

func (w *whereBuilder) addRaw(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(w.clauses, " AND ")
}

// next returns the placeholder for the parameter that would be appended
// after the current ones.
func (w *whereBuilder) next(offset int) string {
	return fmt.Sprintf("$%d", len(w.args)+offset)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func influencerWhere(f domain.InfluencerFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Username != "" {
		w.add(`username ILIKE '%%' || $%d || '%%'`, likeEscaper.Replace(f.Username))
	}
	if f.PrimaryNiche != "" {
		w.add("lower(primary_niche) = lower($%d)", f.PrimaryNiche)
	}
	if f.SecondaryNiche != "" {
		w.add("lower(secondary_niche) = lower($%d)", f.SecondaryNiche)
	}
	if f.Country != "" {
		w.add("lower(country) = lower($%d)", f.Country)
	}
	return w
}

func campaignWhere(f domain.CampaignFilter) *whereBuilder {
	w := &whereBuilder{}
	w.addRaw("NOT c.is_deleted")
	if f.BrandID != "" {
		w.add("c.brand_id = $%d", f.BrandID)
	}
	if f.Status != "" {
		w.add("c.status = $%d", string(f.Status))
	}
	return w
}
