// load.go — CSV edge-list ingestion.

package load

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pkg/errors"

	"github.com/isomatch/isomatch/graph"
)

// Option adjusts how an edge list is read.
type Option func(*config)

type config struct {
	defaultChannel string
}

// WithDefaultChannel routes every edge of a channel-less file into the
// named channel. It is consulted only when the header has no channel
// column; an explicit column always wins.
func WithDefaultChannel(name string) Option {
	return func(c *config) { c.defaultChannel = name }
}

// columns holds the header positions of the fields we care about,
// -1 when a column is absent.
type columns struct {
	src, dst, ch, cnt int
}

func (c columns) need() int {
	n := c.src
	for _, i := range []int{c.dst, c.ch, c.cnt} {
		if i > n {
			n = i
		}
	}

	return n
}

// ReadEdgeList reads CSV records from r and assembles a multichannel
// graph. The header must name source and target columns; channel and
// count columns are optional (see WithDefaultChannel and the package
// doc for the defaults).
//
// Errors:
//   - ErrHeader when the header is missing or lacks required columns;
//   - ErrRecord for short rows and empty identity fields, naming the line;
//   - ErrCount for counts that are not positive finite numbers;
//   - graph.ErrNoChannels when the input has a header but no data rows.
//
// Complexity: O(E) over the record count, plus graph construction.
func ReadEdgeList(r io.Reader, opts ...Option) (*graph.Graph, error) {
	const op = "ReadEdgeList"

	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrHeader, "%s: empty input", op)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: header", op)
	}
	cols, err := indexHeader(op, header, cfg.defaultChannel != "")
	if err != nil {
		return nil, err
	}

	// First-appearance identity order, duplicates collapsed.
	nodes := linkedhashset.New()
	channels := linkedhashset.New()

	var edges []graph.Edge
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "%s: line %d", op, line)
		}
		if len(rec) <= cols.need() {
			return nil, errors.Wrapf(ErrRecord, "%s: line %d: want %d fields, got %d",
				op, line, cols.need()+1, len(rec))
		}

		src := strings.TrimSpace(rec[cols.src])
		dst := strings.TrimSpace(rec[cols.dst])
		if src == "" || dst == "" {
			return nil, errors.Wrapf(ErrRecord, "%s: line %d: empty source or target", op, line)
		}
		ch := cfg.defaultChannel
		if cols.ch >= 0 {
			if ch = strings.TrimSpace(rec[cols.ch]); ch == "" {
				return nil, errors.Wrapf(ErrRecord, "%s: line %d: empty channel", op, line)
			}
		}
		count := 1.0
		if cols.cnt >= 0 {
			raw := strings.TrimSpace(rec[cols.cnt])
			v, perr := strconv.ParseFloat(raw, 64)
			if perr != nil {
				return nil, errors.Wrapf(ErrCount, "%s: line %d: %q", op, line, raw)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return nil, errors.Wrapf(ErrCount, "%s: line %d: %v", op, line, v)
			}
			count = v
		}

		nodes.Add(src)
		nodes.Add(dst)
		channels.Add(ch)
		edges = append(edges, graph.Edge{Source: src, Target: dst, Channel: ch, Count: count})
	}

	ids := make([]string, 0, nodes.Size())
	for _, v := range nodes.Values() {
		ids = append(ids, v.(string))
	}
	names := make([]string, 0, channels.Size())
	for _, v := range channels.Values() {
		names = append(names, v.(string))
	}

	g, err := graph.NewFromEdges(edges,
		graph.WithNodes(ids...), graph.WithChannels(names...))
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	return g, nil
}

// LoadEdgeFile opens path and reads it with ReadEdgeList. Errors carry
// the file name.
func LoadEdgeFile(path string, opts ...Option) (*graph.Graph, error) {
	const op = "LoadEdgeFile"

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "%s(%s)", op, path)
	}
	defer f.Close()

	g, err := ReadEdgeList(f, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "%s(%s)", op, path)
	}

	return g, nil
}

// indexHeader resolves column positions by name, case-insensitively.
func indexHeader(op string, header []string, haveDefault bool) (columns, error) {
	cols := columns{src: -1, dst: -1, ch: -1, cnt: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "source":
			cols.src = i
		case "target":
			cols.dst = i
		case "channel":
			cols.ch = i
		case "count":
			cols.cnt = i
		}
	}
	if cols.src < 0 || cols.dst < 0 {
		return cols, errors.Wrapf(ErrHeader, "%s: need source and target columns, got %v", op, header)
	}
	if cols.ch < 0 && !haveDefault {
		return cols, errors.Wrapf(ErrHeader, "%s: no channel column and no default channel", op)
	}

	return cols, nil
}
