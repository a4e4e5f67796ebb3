package db

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	if !IsDuplicateKey(dup) {
		t.Fatalf("1062 must be a duplicate key")
	}
	if !IsDuplicateKey(fmt.Errorf("insert seat: %w", dup)) {
		t.Fatalf("wrapped 1062 must be a duplicate key")
	}
	if IsDuplicateKey(&mysql.MySQLError{Number: 1452}) {
		t.Fatalf("other MySQL errors are not duplicates")
	}
	if IsDuplicateKey(nil) {
		t.Fatalf("nil is not a duplicate key")
	}
}

func TestIsBadConn(t *testing.T) {
	if !IsBadConn(driver.ErrBadConn) {
		t.Fatalf("ErrBadConn must be reported")
	}
	if !IsBadConn(fmt.Errorf("query: %w", driver.ErrBadConn)) {
		t.Fatalf("wrapped ErrBadConn must be reported")
	}
	if IsBadConn(errors.New("boom")) {
		t.Fatalf("arbitrary errors are not bad connections")
	}
}
