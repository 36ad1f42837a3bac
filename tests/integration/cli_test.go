// CLI integration tests for partsbin: init, catalog CRUD, linking, CSV
// import, and post-import verification through the built binary.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestMain builds the partsbin binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "partsbin-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	partsbinBin = filepath.Join(tmpDir, "partsbin")

	cmd := exec.Command("go", "build", "-o", partsbinBin, "./cmd/partsbin")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

// Test1_Initialize verifies partsbin initialization.
func Test1_Initialize(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRunPartsbin("init")

	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	// Verify data directory and database file were created
	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}
	dbFile := filepath.Join(env.DataDir, "partsbin.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("partsbin.db not created")
	}
}

// Test2_ComponentLifecycle verifies add, get, update, stock, and delete.
func Test2_ComponentLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPartsbin("init")

	// Add with explicit fields; classifier picks RESISTOR from the description.
	result := env.MustRunPartsbin("--json", "component", "add", "R10K",
		"--description", "10k ohm resistor", "--price", "0.02", "--quantity", "100")
	added := ParseJSON[Component](t, result.Stdout)
	if added.ComponentID == "" {
		t.Error("component ID not generated")
	}
	if added.Category != "RESISTOR" {
		t.Errorf("expected classified category RESISTOR, got %q", added.Category)
	}

	// Get by identifier
	result = env.MustRunPartsbin("--json", "component", "get", "R10K")
	got := ParseJSON[Component](t, result.Stdout)
	if got.Quantity != 100 {
		t.Errorf("expected quantity 100, got %d", got.Quantity)
	}

	// Update the price
	result = env.MustRunPartsbin("--json", "component", "update", "R10K", "--price", "0.05")
	updated := ParseJSON[Component](t, result.Stdout)
	if updated.Description != "10k ohm resistor" {
		t.Errorf("update should not touch description, got %q", updated.Description)
	}

	// Adjust stock down
	result = env.MustRunPartsbin("--json", "component", "stock", "R10K", "--", "-30")
	stocked := ParseJSON[Component](t, result.Stdout)
	if stocked.Quantity != 70 {
		t.Errorf("expected quantity 70 after stock -30, got %d", stocked.Quantity)
	}

	// Delete and verify the identifier is gone
	env.MustRunPartsbin("component", "delete", "R10K")
	result = env.RunPartsbin("component", "get", "R10K")
	if result.ExitCode == 0 {
		t.Error("get after delete should fail")
	}
}

// Test3_CategoryAndLinks verifies category CRUD and link management.
func Test3_CategoryAndLinks(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPartsbin("init")

	env.MustRunPartsbin("--json", "component", "add", "NE555",
		"--description", "timer IC", "--category", "IC")
	env.MustRunPartsbin("category", "add", "through-hole", "--description", "THT parts")

	// Link to a second category
	env.MustRunPartsbin("link", "assign", "NE555", "through-hole")

	result := env.MustRunPartsbin("link", "categories", "NE555")
	if !strings.Contains(result.Stdout, "IC") || !strings.Contains(result.Stdout, "through-hole") {
		t.Errorf("expected both categories in output, got %q", result.Stdout)
	}

	// The display name follows the most recent assignment
	result = env.MustRunPartsbin("--json", "component", "get", "NE555")
	comp := ParseJSON[Component](t, result.Stdout)
	if comp.Category != "through-hole" {
		t.Errorf("expected display category through-hole, got %q", comp.Category)
	}

	// Rename propagates to the component display name
	env.MustRunPartsbin("category", "update", "through-hole", "--rename", "tht")
	result = env.MustRunPartsbin("--json", "component", "get", "NE555")
	comp = ParseJSON[Component](t, result.Stdout)
	if comp.Category != "tht" {
		t.Errorf("expected renamed display category tht, got %q", comp.Category)
	}

	// Unlink clears the matching display name
	env.MustRunPartsbin("link", "remove", "NE555", "tht")
	result = env.MustRunPartsbin("--json", "component", "get", "NE555")
	comp = ParseJSON[Component](t, result.Stdout)
	if comp.Category != "" {
		t.Errorf("expected cleared display category, got %q", comp.Category)
	}
}

// Test4_ImportAndVerify verifies the CSV import pipeline end to end.
func Test4_ImportAndVerify(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPartsbin("init")

	csvPath := env.WriteFile("parts.csv", strings.Join([]string{
		"ITEM,PRICE,DESCRIPTION",
		"R10K,0.02,10k resistor",
		"C100NF,0.05,100nF ceramic",
		",0.01,missing identifier",
		"R10K,0.04,restock at a higher price",
	}, "\n")+"\n")

	result := env.MustRunPartsbin("--json", "import", csvPath)
	summary := ParseJSON[Summary](t, result.Stdout)
	if summary.Inserted != 2 {
		t.Errorf("expected 2 inserted, got %d", summary.Inserted)
	}
	if summary.Overwritten != 1 {
		t.Errorf("expected 1 overwritten, got %d", summary.Overwritten)
	}
	if summary.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", summary.Skipped)
	}

	// The duplicate row's higher price won
	result = env.MustRunPartsbin("--json", "component", "get", "R10K")
	comp := ParseJSON[Component](t, result.Stdout)
	if comp.Price != "0.04" {
		t.Errorf("expected price 0.04 after import, got %q", comp.Price)
	}

	// Reimport is a no-op
	result = env.MustRunPartsbin("--json", "import", csvPath)
	summary = ParseJSON[Summary](t, result.Stdout)
	if summary.Inserted != 0 || summary.Overwritten != 0 {
		t.Errorf("reimport should change nothing, got %+v", summary)
	}

	// Verify reports both identifiers present
	result = env.MustRunPartsbin("verify", "R10K", "C100NF")
	if !strings.Contains(result.Stdout, "All 2 component(s) present") {
		t.Errorf("unexpected verify output: %q", result.Stdout)
	}

	// Verify fails for a missing identifier
	result = env.RunPartsbin("verify", "MISSING_PART")
	if result.ExitCode == 0 {
		t.Error("verify of a missing identifier should fail")
	}
	if !strings.Contains(result.Stdout, "MISSING") {
		t.Errorf("expected MISSING marker in output, got %q", result.Stdout)
	}
}

// Test5_SemicolonImport verifies delimiter sniffing through the CLI.
func Test5_SemicolonImport(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRunPartsbin("init")

	csvPath := env.WriteFile("parts.csv",
		"ITEM;PRICE;DESCRIPTION\nBC547;0.03;NPN transistor\n")

	result := env.MustRunPartsbin("--json", "import", csvPath)
	summary := ParseJSON[Summary](t, result.Stdout)
	if summary.Inserted != 1 {
		t.Errorf("expected 1 inserted, got %d", summary.Inserted)
	}

	result = env.MustRunPartsbin("--json", "component", "get", "BC547")
	comp := ParseJSON[Component](t, result.Stdout)
	if comp.Description != "NPN transistor" {
		t.Errorf("expected description parsed from semicolon row, got %q", comp.Description)
	}
}
