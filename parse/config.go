/*
package parse reads the flat "[header]" + "name = value" configuration files
used by the cosmoconv command line tool.

A file looks like:

	[cosmoconv]
	# comments run to the end of the line
	H      = 0.6766
	OmegaM = 0.3111
	Scheme = fritsch-butland

Variable names are case insensitive. Each variable may be assigned at most
once, and every assigned variable must have been registered on the VarSet
passed to ReadConfig.
*/
package parse

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrConfig is wrapped by every error describing a malformed config file.
var ErrConfig = errors.New("parse: malformed config file")

/////////////////////
// Conversion Code //
/////////////////////

type varType int

const (
	intVar varType = iota
	floatVar
	stringVar
	boolVar
)

func (v varType) String() string {
	switch v {
	case intVar:
		return "int"
	case floatVar:
		return "float"
	case stringVar:
		return "string"
	case boolVar:
		return "bool"
	}
	panic("Impossible")
}

func (v varType) article() string {
	if v == intVar {
		return "an"
	}
	return "a"
}

type conversionFunc func(string) bool

type variable struct {
	name string
	typ  varType
	conv conversionFunc
	set  bool
}

// VarSet is the collection of variables a config file is allowed to assign.
type VarSet struct {
	name string
	vars []variable
}

func intConv(ptr *int64) conversionFunc {
	return func(s string) bool {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return false
		}
		*ptr = i
		return true
	}
}

func floatConv(ptr *float64) conversionFunc {
	return func(s string) bool {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*ptr = f
		return true
	}
}

func stringConv(ptr *string) conversionFunc {
	return func(s string) bool {
		*ptr = strings.Trim(s, " \t\"")
		return true
	}
}

func boolConv(ptr *bool) conversionFunc {
	return func(s string) bool {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return false
		}
		*ptr = b
		return true
	}
}

// NewVarSet returns an empty VarSet for files with the header [name].
func NewVarSet(name string) *VarSet {
	return &VarSet{name: name}
}

// Name returns the header the VarSet expects.
func (vs *VarSet) Name() string { return vs.name }

func (vs *VarSet) add(name string, typ varType, conv conversionFunc) {
	vs.vars = append(vs.vars, variable{
		name: strings.ToLower(name), typ: typ, conv: conv,
	})
}

// Int registers an integer variable and writes its default to ptr.
func (vs *VarSet) Int(ptr *int64, name string, value int64) {
	*ptr = value
	vs.add(name, intVar, intConv(ptr))
}

// Float registers a floating point variable and writes its default to ptr.
func (vs *VarSet) Float(ptr *float64, name string, value float64) {
	*ptr = value
	vs.add(name, floatVar, floatConv(ptr))
}

// String registers a string variable and writes its default to ptr.
func (vs *VarSet) String(ptr *string, name string, value string) {
	*ptr = value
	vs.add(name, stringVar, stringConv(ptr))
}

// Bool registers a boolean variable and writes its default to ptr.
func (vs *VarSet) Bool(ptr *bool, name string, value bool) {
	*ptr = value
	vs.add(name, boolVar, boolConv(ptr))
}

// IsSet reports whether the most recent read assigned the named variable.
func (vs *VarSet) IsSet(name string) bool {
	i := vs.index(strings.ToLower(name))
	return i != -1 && vs.vars[i].set
}

func (vs *VarSet) index(name string) int {
	for i := range vs.vars {
		if vs.vars[i].name == name {
			return i
		}
	}
	return -1
}

//////////////////
// Parsing Code //
//////////////////

// ReadConfig reads the file fname and assigns its variables through vs.
func ReadConfig(fname string, vs *VarSet) error {
	bs, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	return Parse(fname, bs, vs)
}

// Parse assigns the variables in the config text bs through vs. fname is
// only used in error messages.
func Parse(fname string, bs []byte, vs *VarSet) error {
	for i := range vs.vars {
		vs.vars[i].set = false
	}

	lines := strings.Split(strings.ReplaceAll(string(bs), "\r\n", "\n"), "\n")
	lines, lineNums := removeComments(lines)
	for i := range lineNums {
		lineNums[i]++
	}

	if len(lines) == 0 || !strings.EqualFold(lines[0], "["+vs.name+"]") {
		return fmt.Errorf(
			"%w: I expected the config file %s to have the header "+
				"[%s] at the top, but didn't find it", ErrConfig, fname, vs.name,
		)
	}
	lines, lineNums = lines[1:], lineNums[1:]

	names, vals, errLine := associationList(lines)
	if errLine != -1 {
		return fmt.Errorf(
			"%w: I could not parse line %d of the config file %s because it "+
				"did not take the form of a variable assignment",
			ErrConfig, lineNums[errLine], fname,
		)
	}

	if errLine = checkValidNames(names, vs); errLine != -1 {
		return fmt.Errorf(
			"%w: line %d of the config file %s assigns a value to the "+
				"variable '%s', but config files of type [%s] don't have that "+
				"variable", ErrConfig, lineNums[errLine], fname, names[errLine], vs.name,
		)
	}

	if i, j := checkDuplicateNames(names); i != -1 {
		return fmt.Errorf(
			"%w: lines %d and %d of the config file %s both assign a value "+
				"to the variable '%s'", ErrConfig, lineNums[i], lineNums[j],
			fname, names[i],
		)
	}

	if errLine = convertAssoc(names, vals, vs); errLine != -1 {
		v := vs.vars[vs.index(names[errLine])]
		return fmt.Errorf(
			"%w: I could not parse line %d of the config file %s because "+
				"'%s' expects values of type %s and '%s' cannot be converted "+
				"to %s %s", ErrConfig, lineNums[errLine], fname, v.name, v.typ,
			vals[errLine], v.typ.article(), v.typ,
		)
	}

	return nil
}

// removeComments strips comments and blank lines, returning the surviving
// lines along with their zero-indexed positions in the input.
func removeComments(lines []string) ([]string, []int) {
	out, lineNums := []string{}, []int{}
	for i, line := range lines {
		if comment := strings.Index(line, "#"); comment != -1 {
			line = line[:comment]
		}
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		out = append(out, line)
		lineNums = append(lineNums, i)
	}
	return out, lineNums
}

func associationList(lines []string) ([]string, []string, int) {
	names, vals := []string{}, []string{}
	for i := range lines {
		name, val, ok := strings.Cut(lines[i], "=")
		if !ok {
			return nil, nil, i
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if len(name) == 0 {
			return nil, nil, i
		}
		names = append(names, name)
		vals = append(vals, strings.TrimSpace(val))
	}
	return names, vals, -1
}

func checkValidNames(names []string, vs *VarSet) int {
	for i := range names {
		if vs.index(names[i]) == -1 {
			return i
		}
	}
	return -1
}

func checkDuplicateNames(names []string) (int, int) {
	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				return i, j
			}
		}
	}
	return -1, -1
}

// convertAssoc writes every value through its variable's conversion
// function and returns the index of the first value that fails, or -1.
func convertAssoc(names, vals []string, vs *VarSet) int {
	for i := range names {
		j := vs.index(names[i])
		if !vs.vars[j].conv(vals[i]) {
			return i
		}
		vs.vars[j].set = true
	}
	return -1
}
