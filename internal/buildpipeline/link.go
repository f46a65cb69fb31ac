package buildpipeline

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type toolchain struct {
	cc  string
	llc string // optional fallback for IR that cc refuses
}

func findToolchain(cc string) (toolchain, error) {
	if cc == "" {
		cc = "clang"
	}
	ccPath, err := exec.LookPath(cc)
	if err != nil {
		return toolchain{}, fmt.Errorf("%s not found; install clang or pass --cc", cc)
	}
	tc := toolchain{cc: ccPath}
	if llc, err := exec.LookPath("llc"); err == nil {
		tc.llc = llc
	}
	return tc, nil
}

// link turns llPath into the executable out. The compiler is first asked to
// take the IR directly; if that fails and llc exists, llc produces an object
// file that the compiler links.
func (tc toolchain) link(llPath, out string, printCommands bool) error {
	err := runCommand(printCommands, tc.cc, "-x", "ir", llPath, "-o", out, "-Wno-override-module")
	if err == nil {
		return nil
	}
	if tc.llc == "" {
		return err
	}
	obj := out + ".o"
	args := []string{"-filetype=obj", llPath, "-o", obj}
	if triple := hostTriple(tc.cc); triple != "" {
		args = append([]string{"-mtriple=" + triple}, args...)
	}
	if llcErr := runCommand(printCommands, tc.llc, args...); llcErr != nil {
		return fmt.Errorf("%w; llc fallback: %w", err, llcErr)
	}
	defer func() { _ = os.Remove(obj) }()
	return runCommand(printCommands, tc.cc, obj, "-o", out)
}

func hostTriple(cc string) string {
	out, err := exec.Command(cc, "-dumpmachine").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func runCommand(printCommands bool, name string, args ...string) error {
	if printCommands {
		if _, err := fmt.Fprintf(os.Stdout, "%s %s\n", name, strings.Join(args, " ")); err != nil {
			return fmt.Errorf("failed to print command: %w", err)
		}
	}
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return err
		}
		return fmt.Errorf("%s: %s", name, msg)
	}
	return nil
}
