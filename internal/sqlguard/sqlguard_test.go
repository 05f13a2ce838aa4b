package sqlguard

import "testing"

func TestIsSafeSQLAllowed(t *testing.T) {
	allowed := []string{
		"SELECT * FROM t",
		"select col from t",
		"Select Col From T",
		"WITH cte AS (SELECT 1) SELECT * FROM cte",
		"SELECT 1;",
		"SELECT 1;;;",
		"-- comment\nSELECT 1",
		"-- a\n-- b\nSELECT 1",
		"/* comment */ SELECT 1",
		"-- line\n/* block */ SELECT 1",
	}
	for _, sql := range allowed {
		if !IsSafeSQL(sql) {
			t.Errorf("IsSafeSQL(%q) = false, want true", sql)
		}
	}
}

func TestIsSafeSQLBlockedStatements(t *testing.T) {
	blocked := []string{
		"DROP TABLE t",
		"DELETE FROM t",
		"INSERT INTO t VALUES (1)",
		"UPDATE t SET x=1",
		"ALTER TABLE t ADD col INT",
		"CREATE TABLE t (id INT)",
		"TRUNCATE TABLE t",
		"REPLACE INTO t VALUES (1)",
		"MERGE INTO t USING s ON t.id=s.id",
		"GRANT ALL ON db TO user",
		"REVOKE ALL ON db FROM user",
		"EXEC sp_helpdb",
		"EXECUTE sp_helpdb",
		"SHOW TABLES",
	}
	for _, sql := range blocked {
		if IsSafeSQL(sql) {
			t.Errorf("IsSafeSQL(%q) = true, want false", sql)
		}
	}
}

func TestIsSafeSQLInjection(t *testing.T) {
	// Multi-statement injection: the dangerous keyword appears after a
	// perfectly fine SELECT.
	if IsSafeSQL("SELECT 1; DROP TABLE t") {
		t.Error("multi-statement injection passed")
	}
	// A blocked keyword inside a string literal is still rejected. This is
	// the documented over-restriction.
	if IsSafeSQL("SELECT 'update' FROM t") {
		t.Error("keyword inside literal passed")
	}
}

func TestIsSafeSQLCommentsHidingDanger(t *testing.T) {
	if IsSafeSQL("-- sneaky\nDROP TABLE t") {
		t.Error("line comment hid a DROP")
	}
	if IsSafeSQL("/* sneaky */ DROP TABLE t") {
		t.Error("block comment hid a DROP")
	}
}

func TestIsSafeSQLEmpty(t *testing.T) {
	if IsSafeSQL("") {
		t.Error("empty input passed")
	}
	if IsSafeSQL("   ") {
		t.Error("whitespace-only input passed")
	}
}

func TestStripComments(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"-- comment\nSELECT 1", "SELECT 1"},
		{"-- a\n-- b\nSELECT 1", "SELECT 1"},
		{"/* comment */ SELECT 1", "SELECT 1"},
		{"-- line\n/* block */ SELECT 1", "SELECT 1"},
		// Unclosed block comments stay put; the first-keyword check will
		// reject them downstream.
		{"/* unclosed comment", "/* unclosed comment"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := stripComments(tc.in); got != tc.want {
			t.Errorf("stripComments(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
