package repository

import (
	"context"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/Domenick1991/airbooking-console/config"
	"github.com/Domenick1991/airbooking-console/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// Conn is the part of *pgx.Conn the session needs.
type Conn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close(ctx context.Context) error
}

// Querier is what repositories run statements through. *Session implements it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (*domain.Table, error)
	QueryRows(ctx context.Context, sql string, args ...any) ([][]string, error)
	QueryCount(ctx context.Context, sql string, args ...any) (int, error)
	CurrSeqVal(ctx context.Context, sequence string) (int, error)
}

type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "unable to connect to database: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }

type StatementError struct {
	SQL string
	Err error
}

func (e *StatementError) Error() string {
	return e.Err.Error()
}

func (e *StatementError) Unwrap() error { return e.Err }

// Session owns the single database connection of the process.
type Session struct {
	conn Conn
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (*Session, error) {
	conn, err := pgx.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	return NewSession(conn), nil
}

func NewSession(conn Conn) *Session {
	return &Session{conn: conn}
}

func (s *Session) Exec(ctx context.Context, sql string, args ...any) error {
	if _, err := s.conn.Exec(ctx, sql, args...); err != nil {
		return &StatementError{SQL: sql, Err: err}
	}
	return nil
}

func (s *Session) Query(ctx context.Context, sql string, args ...any) (*domain.Table, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, &StatementError{SQL: sql, Err: err}
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	table := &domain.Table{Columns: make([]string, len(fields)), Rows: make([][]string, 0)}
	for i, f := range fields {
		table.Columns[i] = f.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, &StatementError{SQL: sql, Err: err}
		}
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = formatValue(v)
		}
		table.Rows = append(table.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &StatementError{SQL: sql, Err: err}
	}
	return table, nil
}

func (s *Session) QueryRows(ctx context.Context, sql string, args ...any) ([][]string, error) {
	table, err := s.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return table.Rows, nil
}

// QueryCount returns 1 when the query yields at least one row and 0 otherwise. It never
// reads past the first row, so it is an existence check rather than a count.
func (s *Session) QueryCount(ctx context.Context, sql string, args ...any) (int, error) {
	rows, err := s.conn.Query(ctx, sql, args...)
	if err != nil {
		return 0, &StatementError{SQL: sql, Err: err}
	}
	defer rows.Close()

	count := 0
	if rows.Next() {
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, &StatementError{SQL: sql, Err: err}
	}
	return count, nil
}

// CurrSeqVal returns the current value of sequence in this session, or -1 when the
// query yields nothing.
func (s *Session) CurrSeqVal(ctx context.Context, sequence string) (int, error) {
	rows, err := s.QueryRows(ctx, `SELECT currval($1::text::regclass)`, sequence)
	if err != nil {
		return -1, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return -1, nil
	}
	v, err := strconv.Atoi(rows[0][0])
	if err != nil {
		return -1, fmt.Errorf("parse %s value %q: %w", sequence, rows[0][0], err)
	}
	return v, nil
}

// Close releases the connection. Calling it more than once is a no-op.
func (s *Session) Close() {
	if s == nil || s.conn == nil {
		return
	}
	_ = s.conn.Close(context.Background())
	s.conn = nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")
	case pgtype.Numeric:
		return formatNumeric(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func formatNumeric(n pgtype.Numeric) string {
	if !n.Valid {
		return "null"
	}
	if n.NaN {
		return "NaN"
	}
	if n.Int == nil {
		return "0"
	}
	digits := new(big.Int).Abs(n.Int).String()
	sign := ""
	if n.Int.Sign() < 0 {
		sign = "-"
	}
	if n.Exp >= 0 {
		return sign + digits + strings.Repeat("0", int(n.Exp))
	}
	scale := int(-n.Exp)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	return sign + digits[:len(digits)-scale] + "." + digits[len(digits)-scale:]
}

var _ Querier = (*Session)(nil)
