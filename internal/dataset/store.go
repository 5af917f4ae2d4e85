package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wonny/threes/internal/contracts"
)

// utf8BOM is written in front of both flat files (the "utf-8-sig" encoding)
const utf8BOM = "\ufeff"

// ErrMalformed marks a flat file whose content does not match the expected schema
var ErrMalformed = errors.New("malformed flat file")

// writeFileAtomic renders the file into a temp file next to path and renames it
// into place, so readers never observe a half-written file.
func writeFileAtomic(path string, render func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	bw := bufio.NewWriter(tmp)
	if err := render(bw); err != nil {
		tmp.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteTeamStats writes records to path (BOM, header, one row per record)
func WriteTeamStats(path string, records []contracts.TeamSeasonRecord) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}

		cw := csv.NewWriter(w)
		if err := cw.Write(contracts.TeamStatsColumns); err != nil {
			return err
		}
		for _, r := range records {
			row := []string{
				r.Season,
				strconv.FormatInt(r.TeamID, 10),
				r.TeamName,
				strconv.Itoa(r.GamesPlayed),
				strconv.Itoa(r.Wins),
				strconv.Itoa(r.Losses),
				strconv.Itoa(r.ThreesMade),
				strconv.Itoa(r.ThreesAttempted),
				formatFloat(r.ThreePct),
				strconv.Itoa(r.Points),
				formatFloat(r.ThreesPerGame),
				formatFloat(r.ThreesAttPerGame),
				strconv.Itoa(r.PointsFromThree),
				formatFloat(r.PercentPointsThree),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// WriteChampions writes the champions table to path
func WriteChampions(path string, champions []contracts.ChampionRecord) error {
	return writeFileAtomic(path, func(w io.Writer) error {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return err
		}

		cw := csv.NewWriter(w)
		if err := cw.Write(contracts.ChampionColumns); err != nil {
			return err
		}
		for _, c := range champions {
			if err := cw.Write([]string{c.Season, c.ChampionTeam}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// readTable reads a BOM-prefixed CSV file and checks its header exactly
func readTable(path string, header []string) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	raw = bytes.TrimPrefix(raw, []byte(utf8BOM))

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = len(header)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header", ErrMalformed, path)
	}

	got := rows[0]
	for i := range header {
		if got[i] != header[i] {
			return nil, fmt.Errorf("%w: %s: header column %d is %q, want %q", ErrMalformed, path, i+1, got[i], header[i])
		}
	}

	return rows[1:], nil
}

// rowParser collects the first conversion error of a row
type rowParser struct {
	row  []string
	cols []string
	err  error
}

func (p *rowParser) int(i int) int {
	v, err := strconv.Atoi(strings.TrimSpace(p.row[i]))
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: %v", p.cols[i], err)
	}
	return v
}

func (p *rowParser) int64(i int) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(p.row[i]), 10, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: %v", p.cols[i], err)
	}
	return v
}

func (p *rowParser) float(i int) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(p.row[i]), 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: %v", p.cols[i], err)
	}
	return v
}

// ReadTeamStats reads the team stats file written by WriteTeamStats
func ReadTeamStats(path string) ([]contracts.TeamSeasonRecord, error) {
	rows, err := readTable(path, contracts.TeamStatsColumns)
	if err != nil {
		return nil, err
	}

	records := make([]contracts.TeamSeasonRecord, 0, len(rows))
	for n, row := range rows {
		p := rowParser{row: row, cols: contracts.TeamStatsColumns}
		r := contracts.TeamSeasonRecord{
			Season:             row[0],
			TeamID:             p.int64(1),
			TeamName:           row[2],
			GamesPlayed:        p.int(3),
			Wins:               p.int(4),
			Losses:             p.int(5),
			ThreesMade:         p.int(6),
			ThreesAttempted:    p.int(7),
			ThreePct:           p.float(8),
			Points:             p.int(9),
			ThreesPerGame:      p.float(10),
			ThreesAttPerGame:   p.float(11),
			PointsFromThree:    p.int(12),
			PercentPointsThree: p.float(13),
		}
		if p.err != nil {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("%w: %s line %d: %v", ErrMalformed, path, n+2, p.err)
		}
		records = append(records, r)
	}

	return records, nil
}

// ReadChampions reads the champions file written by WriteChampions
func ReadChampions(path string) ([]contracts.ChampionRecord, error) {
	rows, err := readTable(path, contracts.ChampionColumns)
	if err != nil {
		return nil, err
	}

	champions := make([]contracts.ChampionRecord, 0, len(rows))
	for _, row := range rows {
		champions = append(champions, contracts.ChampionRecord{Season: row[0], ChampionTeam: row[1]})
	}
	return champions, nil
}
