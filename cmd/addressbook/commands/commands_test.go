package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"addressbook/internal/domain"
)

func withClock(t *testing.T, y int, m time.Month, d int) {
	t.Helper()
	prev := now
	now = func() time.Time { return time.Date(y, m, d, 10, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = prev })
}

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--home", home, "--env-file", ""}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestShell_Session(t *testing.T) {
	withClock(t, 2024, time.June, 2)
	home := t.TempDir()

	steps := []struct {
		in   string
		want []string
	}{
		{"hello", []string{"How can I help you?"}},
		{"add Alice 1111111111", []string{"Contact added."}},
		{"add Alice 2222222222", []string{"Contact updated."}},
		{"add Bob 12345", []string{"Phone number must consist of 10 digits, got: '12345'"}},
		{"add", []string{"Not enough arguments for the command."}},
		{"phone Alice", []string{"1111111111; 2222222222"}},
		{"change Alice 1111111111 3333333333", []string{"Contact updated."}},
		{"change Alice 9999999999 4444444444", []string{"Phone '9999999999' not found in contact 'Alice'."}},
		{"change Alice 2222222222", []string{"Not enough arguments for the command."}},
		{"phone Carol", []string{"Contact 'Carol' not found."}},
		{"add-birthday Alice 04.06.1990", []string{"Birthday added."}},
		{"add-birthday Alice 31.02.1990", []string{"Invalid date format. Use DD.MM.YYYY"}},
		{"show-birthday Alice", []string{"04.06.1990"}},
		{"add Bob", []string{"Contact added."}},
		{"show-birthday Bob", []string{"Birthday for 'Bob' is not specified."}},
		{"birthdays", []string{"Alice: 04.06.2024"}},
		{"all", []string{
			"Contact name: Alice, phones: 3333333333; 2222222222, birthday: 04.06.1990",
			"Contact name: Bob, phones: , birthday: not specified",
		}},
		{"add -Bob 0123456789", []string{"Contact added."}},
		{"phone -Bob", []string{"0123456789"}},
		{"FOO bar", []string{"Invalid command."}},
		{"   ", []string{"Invalid command."}},
		{"ADD Carol 5555555555", []string{"Contact added."}},
		{"delete Carol", []string{"Contact deleted."}},
		{"delete Carol", []string{"Contact 'Carol' not found."}},
	}

	var stdin, want strings.Builder
	want.WriteString(welcomeMessage + "\n")
	for _, s := range steps {
		stdin.WriteString(s.in + "\n")
		want.WriteString(promptMessage)
		for _, line := range s.want {
			want.WriteString(line + "\n")
		}
	}
	stdin.WriteString("exit\n")
	want.WriteString(promptMessage + goodbyeMessage + "\n")

	got, err := run(t, home, stdin.String())
	if err != nil {
		t.Fatalf("shell: %v", err)
	}
	if got != want.String() {
		t.Fatalf("transcript mismatch\n got:\n%s\nwant:\n%s", got, want.String())
	}

	// The session was saved on exit.
	out, err := run(t, home, "", "phone", "Alice")
	if err != nil {
		t.Fatalf("phone: %v", err)
	}
	if out != "3333333333; 2222222222\n" {
		t.Fatalf("got %q", out)
	}
}

func TestShell_EOFSavesAndExits(t *testing.T) {
	home := t.TempDir()
	out, err := run(t, home, "add Alice 1111111111\n")
	if err != nil {
		t.Fatalf("shell: %v", err)
	}
	if !strings.HasSuffix(out, goodbyeMessage+"\n") {
		t.Fatalf("missing goodbye: %q", out)
	}

	out, err = run(t, home, "", "all")
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if !strings.Contains(out, "Contact name: Alice, phones: 1111111111") {
		t.Fatalf("got %q", out)
	}
}

func TestOneShot_CommandsPersist(t *testing.T) {
	withClock(t, 2024, time.June, 3)
	home := t.TempDir()

	for _, args := range [][]string{
		{"add", "Bob", "0123456789"},
		{"add-birthday", "Bob", "08.06.1985"},
	} {
		if _, err := run(t, home, "", args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	out, err := run(t, home, "", "birthdays")
	if err != nil {
		t.Fatalf("birthdays: %v", err)
	}
	if out != "Bob: 10.06.2024\n" {
		t.Fatalf("got %q", out)
	}
}

func TestOneShot_Errors(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "", "change", "Alice")
	if !domain.IsInsufficientArguments(err) {
		t.Fatalf("want insufficient arguments, got %v", err)
	}
	if userMessage(err) != notEnoughArguments {
		t.Fatalf("userMessage = %q", userMessage(err))
	}

	_, err = run(t, home, "", "phone", "Nobody")
	if !domain.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}

	out, err := run(t, home, "", "birthdays")
	if err != nil || out != "No birthdays in the coming week.\n" {
		t.Fatalf("birthdays = %q, %v", out, err)
	}
}

func TestExport(t *testing.T) {
	home := t.TempDir()
	if _, err := run(t, home, "", "add", "Alice", "0123456789"); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := run(t, home, "", "export", "-o", "yaml")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "name: Alice") || !strings.Contains(out, "version: 1") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}

	out, err = run(t, home, "", "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, `"phones": [`) || !strings.Contains(out, `"0123456789"`) {
		t.Fatalf("unexpected json:\n%s", out)
	}

	if _, err := run(t, home, "", "export", "-o", "xml"); err == nil {
		t.Fatal("expected error for xml")
	}

	yamlHome := t.TempDir()
	if _, err := run(t, yamlHome, "", "--format", "yaml", "add", "Bob"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err = run(t, yamlHome, "", "--format", "yaml", "export")
	if err != nil || !strings.Contains(out, "name: Bob") {
		t.Fatalf("export without -o = %q, %v", out, err)
	}
}

func TestFormatSelectsSeparateFile(t *testing.T) {
	home := t.TempDir()
	if _, err := run(t, home, "", "add", "Alice", "0123456789"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := run(t, home, "", "--format", "yaml", "all")
	if err != nil || out != "Address book is empty.\n" {
		t.Fatalf("yaml book = %q, %v", out, err)
	}
	out, err = run(t, home, "", "all")
	if err != nil || !strings.Contains(out, "Contact name: Alice") {
		t.Fatalf("json book = %q, %v", out, err)
	}
}

func TestEncryptedHome(t *testing.T) {
	home := t.TempDir()
	const pass = "Corr3ct-Horse-Battery"

	if _, err := run(t, home, "", "-p", pass, "add", "Alice", "0123456789"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := run(t, home, "", "-p", pass, "phone", "Alice")
	if err != nil || out != "0123456789\n" {
		t.Fatalf("phone = %q, %v", out, err)
	}
	if _, err := run(t, home, "", "-p", "Wr0ng-Passphrase!!", "phone", "Alice"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
	if _, err := run(t, home, "", "-p", "weak", "all"); err == nil {
		t.Fatal("expected weak passphrase to be rejected")
	}
}

func TestParseInput(t *testing.T) {
	cmd, args := parseInput("  ADD-Birthday  Alice   01.01.2000 ")
	if cmd != "add-birthday" || len(args) != 2 || args[0] != "Alice" || args[1] != "01.01.2000" {
		t.Fatalf("parseInput = %q %v", cmd, args)
	}
	if cmd, args := parseInput(""); cmd != "" || args != nil {
		t.Fatalf("parseInput(\"\") = %q %v", cmd, args)
	}
}

func TestShellArgv(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{nil, []string{"add", "--"}},
		{[]string{"-Bob", "0123456789"}, []string{"add", "--", "-Bob", "0123456789"}},
		{[]string{"--help"}, []string{"add", "--help"}},
		{[]string{"Alice", "-h"}, []string{"add", "Alice", "-h"}},
	}
	for _, tt := range tests {
		got := shellArgv("add", tt.args)
		if strings.Join(got, " ") != strings.Join(tt.want, " ") {
			t.Fatalf("shellArgv(add, %q) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
