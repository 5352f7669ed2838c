package holiday

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// CountryTable keeps holidays of one country: recurring entries dated
// "MM-DD" and entries for particular years.
type CountryTable struct {
	EveryYear []Holiday         `yaml:"every_year"`
	Years     map[int][]Holiday `yaml:"years"`
}

// Table is a static holiday source keyed by upper case country code.
type Table struct {
	DefaultCountry string
	Countries      map[string]CountryTable
}

// LoadFile reads holiday table from YAML file of the form
//
//	US:
//	  every_year:
//	    - {date: "01-01", name: "New Year's Day"}
//	  years:
//	    2025:
//	      - {date: "2025-01-20", name: "Martin Luther King Jr. Day"}
func LoadFile(path, defaultCountry string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read holidays file: %w", err)
	}
	return Parse(data, defaultCountry)
}

// Parse decodes holiday table from YAML data.
func Parse(data []byte, defaultCountry string) (*Table, error) {
	raw := make(map[string]CountryTable)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode holidays: %w", err)
	}
	t := &Table{
		DefaultCountry: strings.ToUpper(defaultCountry),
		Countries:      make(map[string]CountryTable, len(raw)),
	}
	for country, ct := range raw {
		for _, h := range ct.EveryYear {
			if !validMonthDay(h.Date) {
				return nil, fmt.Errorf("country %s: bad recurring holiday date %q", country, h.Date)
			}
		}
		t.Countries[strings.ToUpper(country)] = ct
	}
	return t, nil
}

// Lookup implements holiday lookup over the table. Empty country selects
// table default.
func (t *Table) Lookup(year int, country, _ string) []Holiday {
	if t == nil {
		return nil
	}
	if len(country) == 0 {
		country = t.DefaultCountry
	}
	ct, ok := t.Countries[strings.ToUpper(country)]
	if !ok {
		return nil
	}
	prefix := strconv.Itoa(year) + "-"
	out := make([]Holiday, 0, len(ct.EveryYear)+len(ct.Years[year]))
	for _, h := range ct.EveryYear {
		h.Date = prefix + h.Date
		out = append(out, h)
	}
	out = append(out, ct.Years[year]...)
	return out
}

func validMonthDay(s string) bool {
	if len(s) != 5 || s[2] != '-' {
		return false
	}
	m, err1 := strconv.Atoi(s[:2])
	d, err2 := strconv.Atoi(s[3:])
	return err1 == nil && err2 == nil && m >= 1 && m <= 12 && d >= 1 && d <= 31
}
