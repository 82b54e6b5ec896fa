// Package account provides read-only access to the system account
// database. It parses the passwd file directly because the lookups here
// need the login shell field, which os/user does not expose.
package account

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultPasswdPath is the standard location of the passwd file.
const DefaultPasswdPath = "/etc/passwd"

// ErrNotFound indicates that no account record matched the lookup.
var ErrNotFound = errors.New("user not found")

// User is a single account record.
type User struct {
	Name  string
	UID   int
	GID   int
	Gecos string
	Home  string
	Shell string
}

// DB performs account lookups. Implementations must return ErrNotFound
// (possibly wrapped) when no record matches.
type DB interface {
	LookupName(name string) (*User, error)
	LookupUID(uid int) (*User, error)
}

// PasswdDB is a DB backed by a passwd-format file. The zero value reads
// DefaultPasswdPath.
type PasswdDB struct {
	// Path overrides the passwd file location. Empty means DefaultPasswdPath.
	Path string
}

// LookupName returns the account record with the given login name.
func (db *PasswdDB) LookupName(name string) (*User, error) {
	return db.lookup(func(u *User) bool { return u.Name == name })
}

// LookupUID returns the account record with the given numeric uid.
func (db *PasswdDB) LookupUID(uid int) (*User, error) {
	return db.lookup(func(u *User) bool { return u.UID == uid })
}

func (db *PasswdDB) lookup(match func(*User) bool) (*User, error) {
	path := db.Path
	if path == "" {
		path = DefaultPasswdPath
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open account database: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		u, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if match(u) {
			return u, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read account database: %w", err)
	}
	return nil, ErrNotFound
}

// parseLine parses one passwd line (name:passwd:uid:gid:gecos:home:shell).
// Comments, blanks, and malformed lines are skipped rather than treated
// as errors, matching the tolerant behavior of the system's own parsers.
func parseLine(line string) (*User, bool) {
	trim := strings.TrimSpace(line)
	if trim == "" || strings.HasPrefix(trim, "#") {
		return nil, false
	}
	parts := strings.Split(line, ":")
	if len(parts) < 7 {
		return nil, false
	}
	uid, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, false
	}
	gid, err := strconv.Atoi(parts[3])
	if err != nil {
		return nil, false
	}
	return &User{
		Name:  parts[0],
		UID:   uid,
		GID:   gid,
		Gecos: parts[4],
		Home:  parts[5],
		Shell: parts[6],
	}, true
}
