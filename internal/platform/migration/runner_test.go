// Copyright (c) 2026 Minar. All rights reserved.

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/*
TestPgx5URL checks the DSN scheme rewrite golang-migrate needs to pick its
pgx/v5 driver.
*/
func TestPgx5URL(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres_scheme", "postgres://minar:pw@db:5432/minar", "pgx5://minar:pw@db:5432/minar"},
		{"postgresql_scheme", "postgresql://db/minar", "pgx5://db/minar"},
		{"already_pgx5", "pgx5://db/minar", "pgx5://db/minar"},
		{"keyword_dsn_untouched", "host=db dbname=minar", "host=db dbname=minar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pgx5URL(tt.dsn))
		})
	}
}
