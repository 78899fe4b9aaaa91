// =============================================================================
// Automated Data Analysis - CSV Reader
// =============================================================================
//
// Reads delimited text files. Handles:
//   - Different delimiters (comma, pipe, tab, semicolon, ...)
//   - Source encodings other than UTF-8 (decoded via golang.org/x/text)
//   - A leading UTF-8 byte order mark (written by Excel "CSV UTF-8" exports)
//   - Ragged rows (short rows are padded with missing cells)
//
// =============================================================================

package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// readCSV returns the header row and the data records of a CSV file.
func readCSV(path string, opts Options) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parseCSV(file, opts)
}

// parseCSV reads CSV content from r.
func parseCSV(r io.Reader, opts Options) ([]string, [][]string, error) {
	decoder, err := decoderFor(opts.Encoding)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(transform.NewReader(bufio.NewReader(r), decoder))
	configureReader(reader, opts.Delimiter)

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if len(allRows) == 0 {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}

	return allRows[0], allRows[1:], nil
}

// configureReader applies the delimiter and the lenient parsing settings.
func configureReader(reader *csv.Reader, delimiter string) {
	switch delimiter {
	case "\\t", "\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(delimiter) > 0 {
			reader.Comma = []rune(delimiter)[0]
		} else {
			reader.Comma = ','
		}
	}

	// Rows may have fewer or more fields than the header.
	reader.FieldsPerRecord = -1

	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// decoderFor returns the decoder for a configured encoding name.
func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF-8", "UTF8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "UTF-16", "UTF16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "ISO-8859-1", "LATIN1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "WINDOWS-1252", "CP1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}
