package ledger

import (
	"database/sql"
	"fmt"
	"sort"

	"fjacquet/quicken-query/internal/models"
	"fjacquet/quicken-query/internal/qdb"
	"fjacquet/quicken-query/internal/queryerror"
)

// categorySet holds the resolved category forest. The tag table stores a flat
// parent relation; paths are materialized once here by walking parent links.
type categorySet struct {
	ordered []models.Category // ascending lexicographic path order
	byKey   map[int64]string
	byPath  map[string]int64
}

type rawCategory struct {
	name   string
	typ    int64
	parent sql.NullInt64
}

func loadCategories(conn *qdb.Connection) (*categorySet, error) {
	rows, err := conn.Query(`SELECT z_pk, ztype, zname, zparentcategory FROM ztag`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	raw := make(map[int64]rawCategory)
	for rows.Next() {
		var key int64
		var typ sql.NullInt64
		var name sql.NullString
		var parent sql.NullInt64
		if err := rows.Scan(&key, &typ, &name, &parent); err != nil {
			return nil, fmt.Errorf("scanning category row: %w", err)
		}
		raw[key] = rawCategory{name: name.String, typ: typ.Int64, parent: parent}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading categories: %w", err)
	}

	set := &categorySet{
		byKey:  make(map[int64]string, len(raw)),
		byPath: make(map[string]int64, len(raw)),
	}
	for key, node := range raw {
		path, err := resolvePath(key, node, raw)
		if err != nil {
			return nil, err
		}
		set.byKey[key] = path
		set.byPath[path] = key
	}

	paths := make([]string, 0, len(set.byPath))
	for path := range set.byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		key := set.byPath[path]
		set.ordered = append(set.ordered, models.Category{
			Key:  key,
			Path: path,
			Type: raw[key].typ,
		})
	}

	return set, nil
}

// resolvePath walks the parent chain of one node, prepending ancestor names.
// Visited keys are tracked so a cyclic parent relation fails instead of
// looping forever.
func resolvePath(key int64, node rawCategory, raw map[int64]rawCategory) (string, error) {
	path := node.name
	visited := map[int64]bool{key: true}
	parent := node.parent
	for parent.Valid {
		if visited[parent.Int64] {
			return "", &queryerror.CycleError{Key: parent.Int64}
		}
		visited[parent.Int64] = true
		ancestor, ok := raw[parent.Int64]
		if !ok {
			return "", &queryerror.MalformedRowError{
				Table:  "ztag",
				Reason: fmt.Sprintf("category %d references missing parent %d", key, parent.Int64),
			}
		}
		path = ancestor.name + ":" + path
		parent = ancestor.parent
	}
	return path, nil
}

// Categories returns the category snapshot in ascending path order.
// The returned slice is shared; callers must not modify it.
func (s *Session) Categories() []models.Category {
	return s.categories.ordered
}

// CategoryPathByKey resolves a category key to its full colon-delimited path.
func (s *Session) CategoryPathByKey(key int64) (string, error) {
	path, ok := s.categories.byKey[key]
	if !ok {
		return "", &queryerror.NotFoundError{Entity: "category", Name: fmt.Sprintf("%d", key)}
	}
	return path, nil
}

// CategoryKeyByPath resolves a full category path to its key.
func (s *Session) CategoryKeyByPath(path string) (int64, error) {
	key, ok := s.categories.byPath[path]
	if !ok {
		return 0, &queryerror.NotFoundError{Entity: "category", Name: path}
	}
	return key, nil
}
