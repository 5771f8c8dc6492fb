// Package pgconv converts between pgtype values and domain types at the
// repository boundary.
package pgconv

import (
	"errors"
	"time"

	"roomstay/internal/pkg/caldate"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func DateToPgtype(d caldate.Date) pgtype.Date {
	return pgtype.Date{Time: d.At(0, 0, time.UTC), Valid: true}
}

func DateFromPgtype(pd pgtype.Date) caldate.Date {
	if !pd.Valid {
		return caldate.Date{}
	}
	return caldate.FromTime(pd.Time)
}

func DatePtrFromPgtype(pd pgtype.Date) *caldate.Date {
	if !pd.Valid {
		return nil
	}
	d := caldate.FromTime(pd.Time)
	return &d
}

func IntPtrFromPgtype(pi pgtype.Int4) *int {
	if !pi.Valid {
		return nil
	}
	v := int(pi.Int32)
	return &v
}

func TextToPgtype(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
