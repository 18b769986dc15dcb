package graph

// PruneNullCollections returns a copy of records where every list stored
// under field whose first element carries null at checkField is replaced by
// an empty list. Every other list-valued field is descended into, so nested
// occurrences of field are pruned as well.
//
// This counteracts a Cypher artifact: OPTIONAL MATCH combined with
// collect() yields a one-element list of all-null fields when the match
// finds nothing, where an empty list is what callers actually want.
// The function is pure and idempotent; the input is never mutated.
func PruneNullCollections(records []Record, field, checkField string) []Record {
	pruned := make([]Record, len(records))
	for i, record := range records {
		pruned[i] = pruneRecord(record, field, checkField)
	}
	return pruned
}

func pruneRecord(record Record, field, checkField string) Record {
	pruned := make(Record, len(record))
	for key, value := range record {
		list, ok := asList(value)
		if !ok {
			pruned[key] = value
			continue
		}
		if key == field && isNullPlaceholder(list, checkField) {
			pruned[key] = []any{}
			continue
		}
		pruned[key] = pruneList(list, field, checkField)
	}
	return pruned
}

func pruneList(list []any, field, checkField string) []any {
	pruned := make([]any, len(list))
	for i, item := range list {
		switch v := item.(type) {
		case Record:
			pruned[i] = pruneRecord(v, field, checkField)
		case map[string]any:
			pruned[i] = map[string]any(pruneRecord(Record(v), field, checkField))
		case []any:
			pruned[i] = pruneList(v, field, checkField)
		default:
			pruned[i] = item
		}
	}
	return pruned
}

// isNullPlaceholder reports whether list is the collect() artifact: its
// first element is a map whose checkField is null or absent.
func isNullPlaceholder(list []any, checkField string) bool {
	if len(list) == 0 {
		return false
	}
	first, ok := asMap(list[0])
	if !ok {
		return false
	}
	return first[checkField] == nil
}

func asList(value any) ([]any, bool) {
	list, ok := value.([]any)
	return list, ok
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case Record:
		return v, true
	default:
		return nil, false
	}
}
