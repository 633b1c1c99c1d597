package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"

	bignum "github.com/shabbyrobe/go-bignum"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommands(t *testing.T) {
	for idx, tc := range []struct {
		args []string
		out  string
	}{
		{[]string{"conv", "--to", "16", "123456789123456789123456789"}, "661efdf2e3b19f7c045f15\n"},
		{[]string{"conv", "--to", "2", "--min-digits", "8", "5"}, "00000101\n"},
		{[]string{"conv", "--to", "10", "0xff"}, "255\n"},
		{[]string{"conv", "--from", "36", "--to", "10", "zz"}, "1295\n"},
		{[]string{"quorem", "--", "42", "-10"}, "-4 rem 2\n"},
		{[]string{"quorem", "--", "-42", "10"}, "-5 rem 8\n"},
		{[]string{"quorem", "--", "-42", "-10"}, "5 rem 8\n"},
		{[]string{"pow", "6", "3"}, "216\n"},
		{[]string{"pow", "2", "100"}, "1267650600228229401496703205376\n"},
		{[]string{"rat", "5/3", "+", "7/9"}, "22/9\n"},
		{[]string{"rat", "--mixed", "5/3", "+", "7/9"}, "2 4/9\n"},
		{[]string{"rat", "--", "-1 2/3", "*", "3"}, "-5\n"},
		{[]string{"bytes", "0x0102"}, "01 02\n"},
		{[]string{"bytes", "--width", "4", "--le", "0x0102"}, "02 01 00 00\n"},
		{[]string{"bytes", "--width", "1", "0x0102"}, "02\n"},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := execute(tc.args...)
			tt.MustOK(err)
			tt.MustEqual(tc.out, out, "%d", idx)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		args []string
		err  error
	}{
		{[]string{"quorem", "1", "0"}, bignum.ErrDivisionByZero},
		{[]string{"rat", "1/2", "/", "0"}, bignum.ErrDivisionByZero},
		{[]string{"rat", "1/0", "+", "1"}, bignum.ErrDivisionByZero},
		{[]string{"conv", "--to", "37", "1"}, bignum.ErrInvalidArgument},
		{[]string{"conv", "12x"}, bignum.ErrInvalidArgument},
		{[]string{"bytes", "--", "-1"}, bignum.ErrInvalidArgument},
	} {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := execute(tc.args...)
			tt.MustAssert(errors.Is(err, tc.err), "%v", err)
		})
	}
}

func TestColor(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := execute("--color", "on", "quorem", "7", "2")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "\x1b["), "%q", out)
	tt.MustAssert(strings.HasPrefix(out, "3 "), "%q", out)

	out, err = execute("--color", "off", "quorem", "7", "2")
	tt.MustOK(err)
	tt.MustEqual("3 rem 1\n", out)

	_, err = execute("--color", "sometimes", "quorem", "7", "2")
	tt.MustAssert(err != nil)
}

func TestDump(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := execute("--dump", "pow", "2", "32")
	tt.MustOK(err)
	tt.MustAssert(strings.HasPrefix(out, "4294967296\n"), "%s", out)
	tt.MustAssert(strings.Contains(out, "Limbs: ([]uint32)"), "%s", out)
}
