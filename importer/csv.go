// Package importer parses player rosters from CSV-style input before they
// reach the engine. Errors are collected per line and returned alongside
// the successfully parsed rows; one bad line never aborts the import.
package importer

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/courtside/tournament-engine/models"
)

// Expected column order. Only the name is mandatory.
const (
	colName = iota
	colAge
	colRanking
	colEmail
)

const (
	minAge = 4
	maxAge = 120
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// RowError describes one rejected input line.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result carries the parsed players plus the per-line rejections.
type Result struct {
	Players []models.Player `json:"players"`
	Errors  []RowError      `json:"errors,omitempty"`
}

// ParseRoster reads one record per line with columns name, age, ranking,
// email. The delimiter is auto-detected (";" if present, "," otherwise), a
// header row is detected by name-like column tokens, and fields may be
// quoted. Names duplicated within the import or against knownNames are
// rejected per line, case-insensitively; the remaining rows still import.
func ParseRoster(r io.Reader, knownNames []string) (*Result, error) {
	result := &Result{Players: []models.Player{}}

	seen := make(map[string]bool, len(knownNames))
	for _, name := range knownNames {
		seen[strings.ToLower(strings.TrimSpace(name))] = true
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	first := true
	delimiter := byte(',')
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			if strings.Contains(line, ";") {
				delimiter = ';'
			}
			first = false
			if isHeader(line, delimiter) {
				continue
			}
		}

		fields, err := splitLine(line, delimiter)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Line: lineNo, Reason: err.Error()})
			continue
		}

		player, rowErr := parseRow(fields)
		if rowErr != "" {
			result.Errors = append(result.Errors, RowError{Line: lineNo, Reason: rowErr})
			continue
		}

		key := strings.ToLower(player.Name)
		if seen[key] {
			result.Errors = append(result.Errors, RowError{
				Line:   lineNo,
				Reason: fmt.Sprintf("duplicate player name %q", player.Name),
			})
			continue
		}
		seen[key] = true
		result.Players = append(result.Players, player)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading roster input: %w", err)
	}

	return result, nil
}

// splitLine parses a single record, honoring quoted fields.
func splitLine(line string, delimiter byte) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.Comma = rune(delimiter)
	reader.TrimLeadingSpace = true
	fields, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("malformed record: %v", err)
	}
	return fields, nil
}

func isHeader(line string, delimiter byte) bool {
	fields, err := splitLine(line, delimiter)
	if err != nil || len(fields) == 0 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(fields[0])) {
	case "name", "player", "participant", "nickname":
		return true
	}
	return false
}

func parseRow(fields []string) (models.Player, string) {
	get := func(i int) string {
		if i < len(fields) {
			return strings.TrimSpace(fields[i])
		}
		return ""
	}

	name := get(colName)
	if name == "" {
		return models.Player{}, "missing player name"
	}

	if ageStr := get(colAge); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err != nil {
			return models.Player{}, fmt.Sprintf("invalid age %q", ageStr)
		}
		if age < minAge || age > maxAge {
			return models.Player{}, fmt.Sprintf("age %d out of range %d-%d", age, minAge, maxAge)
		}
	}

	player := models.Player{
		ID:   uuid.NewString(),
		Name: name,
	}
	if ranking := get(colRanking); ranking != "" {
		player.Ranking = &ranking
	}
	if email := get(colEmail); email != "" {
		if !emailPattern.MatchString(email) {
			return models.Player{}, fmt.Sprintf("invalid email %q", email)
		}
		player.Email = &email
	}
	return player, ""
}
