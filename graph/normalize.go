package graph

import (
	"strconv"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
)

// maxSafeInteger is the largest integer that survives a round-trip through
// an IEEE 754 double. Normalized records target JSON consumers, so integers
// beyond this range are rendered as decimal strings to avoid silent
// precision loss.
const maxSafeInteger = 1<<53 - 1

// NormalizeRecords converts driver records into plain Records, mapping each
// record's declared column names to normalized values.
func NormalizeRecords(records []*neo4j.Record) []Record {
	normalized := make([]Record, 0, len(records))
	for _, record := range records {
		normalized = append(normalized, NormalizeRecord(record))
	}
	return normalized
}

// NormalizeRecord converts a single driver record into a plain Record.
func NormalizeRecord(record *neo4j.Record) Record {
	normalized := make(Record, len(record.Keys))
	for i, key := range record.Keys {
		normalized[key] = NormalizeValue(record.Values[i])
	}
	return normalized
}

// NormalizeValue recursively converts a driver value into a plain value:
// node and relationship wrappers unwrap to their property maps, temporal
// and spatial types become their string representations, out-of-safe-range
// integers become decimal strings, and collections normalize element-wise.
// It never mutates its input.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case nil:
		return nil
	case int64:
		if v > maxSafeInteger || v < -maxSafeInteger {
			return strconv.FormatInt(v, 10)
		}
		return v
	case dbtype.Node:
		return normalizeMap(v.Props)
	case dbtype.Relationship:
		return normalizeMap(v.Props)
	case dbtype.Path:
		nodes := make([]any, 0, len(v.Nodes))
		for _, node := range v.Nodes {
			nodes = append(nodes, normalizeMap(node.Props))
		}
		relationships := make([]any, 0, len(v.Relationships))
		for _, rel := range v.Relationships {
			relationships = append(relationships, normalizeMap(rel.Props))
		}
		return map[string]any{
			"nodes":         nodes,
			"relationships": relationships,
		}
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case dbtype.Date:
		return v.String()
	case dbtype.LocalTime:
		return v.String()
	case dbtype.Time:
		return v.String()
	case dbtype.LocalDateTime:
		return v.String()
	case dbtype.Duration:
		return v.String()
	case dbtype.Point2D:
		return v.String()
	case dbtype.Point3D:
		return v.String()
	case []any:
		normalized := make([]any, len(v))
		for i, item := range v {
			normalized[i] = NormalizeValue(item)
		}
		return normalized
	case map[string]any:
		return normalizeMap(v)
	default:
		return v
	}
}

func normalizeMap(m map[string]any) map[string]any {
	normalized := make(map[string]any, len(m))
	for key, item := range m {
		normalized[key] = NormalizeValue(item)
	}
	return normalized
}
