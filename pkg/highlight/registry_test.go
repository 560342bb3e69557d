package highlight

import (
	"os"
	"path/filepath"
	"testing"
)

const testLexerXML = `<lexer>
  <config>
    <name>Foolang</name>
    <alias>foolang</alias>
    <filename>*.foo</filename>
  </config>
  <rules>
    <state name="root">
      <rule pattern="\w+">
        <token type="Name"/>
      </rule>
      <rule pattern="\s+">
        <token type="Text"/>
      </rule>
    </state>
  </rules>
</lexer>`

const testStyleXML = `<style name="footheme">
  <entry type="Background" style="bg:#282a36"/>
  <entry type="Keyword" style="#ff79c6"/>
</style>`

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRegistry_LoadExtraSyntax(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "foolang.xml", testLexerXML)

	reg := NewRegistry()
	if err := reg.LoadExtra("", []string{dir}, nil); err != nil {
		t.Fatalf("LoadExtra: %v", err)
	}

	lexer, source := reg.Lexer("foolang")
	if source != SourceExtra {
		t.Fatalf("source = %v, want SourceExtra", source)
	}
	if lexer.Config().Name != "Foolang" {
		t.Errorf("name = %q", lexer.Config().Name)
	}
}

func TestRegistry_LoadExtraTheme(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "footheme.xml", testStyleXML)

	reg := NewRegistry()
	if err := reg.LoadExtra("", nil, []string{dir}); err != nil {
		t.Fatalf("LoadExtra: %v", err)
	}

	if !reg.HasTheme("footheme") {
		t.Fatal("extra theme not registered")
	}
	style := reg.Theme("footheme")
	if style == nil {
		t.Fatal("Theme returned nil for loaded theme")
	}
	if style.Name != "footheme" {
		t.Errorf("style name = %q", style.Name)
	}
}

func TestRegistry_ExtraShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "go.xml", `<lexer>
  <config>
    <name>go</name>
    <alias>go</alias>
  </config>
  <rules>
    <state name="root">
      <rule pattern=".+">
        <token type="Text"/>
      </rule>
    </state>
  </rules>
</lexer>`)

	reg := NewRegistry()
	if err := reg.LoadExtra("", []string{dir}, nil); err != nil {
		t.Fatalf("LoadExtra: %v", err)
	}

	_, source := reg.Lexer("go")
	if source != SourceExtra {
		t.Errorf("source = %v, want SourceExtra (extra definitions win)", source)
	}
}

func TestRegistry_LoadExtraMissingDir(t *testing.T) {
	reg := NewRegistry()
	if err := reg.LoadExtra("", []string{filepath.Join(t.TempDir(), "absent")}, nil); err == nil {
		t.Error("expected an error for a missing syntax directory")
	}
}
