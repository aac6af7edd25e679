package app

import (
	"net/url"
	"path/filepath"
	"strings"
)

const maxTracedQueryLength = 512

// postgresDSN optionally forces text results, which poolers running in
// transaction mode require for unnamed prepared statements.
func postgresDSN(raw string, disablePreparedBinary bool) string {
	raw = strings.TrimSpace(raw)
	if !disablePreparedBinary {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return raw
	}
	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

// postgresDBName reads the database name from a URL or key=value DSN.
func postgresDBName(dsn string) string {
	if parsed, err := url.Parse(dsn); err == nil && parsed.Scheme != "" {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	for _, token := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

// sqliteDSN accepts the sqlite:// form used by the migration tool as well as
// a plain file path or file: URI.
func sqliteDSN(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, prefix := range []string{"sqlite3://", "sqlite://"} {
		if rest, ok := strings.CutPrefix(trimmed, prefix); ok {
			return rest
		}
	}
	return trimmed
}

func sqliteDBName(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	path, _, _ = strings.Cut(path, "?")
	if path == "" || path == ":memory:" {
		return path
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// traceQuery collapses whitespace and caps the statement recorded on spans.
func traceQuery(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}
