package pgsql

import (
	"strconv"
	"strings"

	"github.com/kbouri/performup-platform-sub000/internal/core/domain"
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

// add appends cond, replacing each "?" with the next positional placeholder.
func (w *whereBuilder) add(cond string, args ...any) {
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next returns the placeholder for an argument appended after the conditions.
func (w *whereBuilder) next(arg any) string {
	w.args = append(w.args, arg)
	return "$" + strconv.Itoa(len(w.args))
}

func transactionFilterWhere(f domain.TransactionFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.From != nil {
		w.add("t.transaction_date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("t.transaction_date <= ?", *f.To)
	}
	if f.Currency != nil {
		w.add("t.currency_code = ?", string(*f.Currency))
	}
	if f.Type != nil {
		w.add("t.transaction_type = ?", string(*f.Type))
	}
	if f.AccountID != nil {
		w.add("(t.source_account_id = ? OR t.destination_account_id = ?)", *f.AccountID, *f.AccountID)
	}
	if f.StudentID != nil {
		w.add("t.student_id = ?", *f.StudentID)
	}
	if f.MentorID != nil {
		w.add("t.mentor_id = ?", *f.MentorID)
	}
	if f.ProfessorID != nil {
		w.add("t.professor_id = ?", *f.ProfessorID)
	}
	return w
}
