package introspect

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tree(paths ...string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for _, p := range paths {
		fsys[p] = &fstest.MapFile{Data: []byte("x")}
	}
	return fsys
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want ProjectSignals
	}{
		{
			name: "empty tree",
			fsys: tree(),
			want: ProjectSignals{},
		},
		{
			name: "no markers",
			fsys: tree("README.md", "docs/index.md"),
			want: ProjectSignals{},
		},
		{
			name: "dotnet with tests",
			fsys: tree("src/Api/Api.csproj", "tests/Api.Tests/Api.Tests.csproj"),
			want: ProjectSignals{HasCompiledProjects: true, TestProjectPath: "tests/Api.Tests"},
		},
		{
			name: "csproj directly under src",
			fsys: tree("src/Api.csproj"),
			want: ProjectSignals{HasCompiledProjects: true},
		},
		{
			name: "csproj outside src is not compiled marker",
			fsys: tree("tools/Gen/Gen.csproj"),
			want: ProjectSignals{},
		},
		{
			name: "root package.json",
			fsys: tree("package.json"),
			want: ProjectSignals{HasScriptedProjects: true},
		},
		{
			name: "nested package.json",
			fsys: tree("web/client/package.json"),
			want: ProjectSignals{HasScriptedProjects: true},
		},
		{
			name: "package.json only inside node_modules",
			fsys: tree("node_modules/left-pad/package.json", "web/node_modules/x/package.json"),
			want: ProjectSignals{},
		},
		{
			name: "both ecosystems",
			fsys: tree("src/Api/Api.csproj", "package.json"),
			want: ProjectSignals{HasCompiledProjects: true, HasScriptedProjects: true},
		},
		{
			name: "last test project wins in lexical order",
			fsys: tree(
				"tests/B.Tests/B.Tests.csproj",
				"tests/A.Tests/A.Tests.csproj",
				"tests/C.Tests/C.Tests.csproj",
			),
			want: ProjectSignals{TestProjectPath: "tests/C.Tests"},
		},
		{
			name: "directory named like a marker is ignored",
			fsys: fstest.MapFS{"src/Weird.csproj": &fstest.MapFile{Mode: fs.ModeDir | 0o755}},
			want: ProjectSignals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(tt.fsys, DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScan_UnrelatedFilesDoNotChangeSignals(t *testing.T) {
	base := tree("src/Api/Api.csproj", "tests/Api.Tests/Api.Tests.csproj", "package.json")
	want, err := Scan(base, DefaultOptions())
	require.NoError(t, err)

	noisy := tree(
		"src/Api/Api.csproj", "tests/Api.Tests/Api.Tests.csproj", "package.json",
		"src/Api/Program.cs", "tests/Api.Tests/UnitTest1.cs", "README.md",
		".github/workflows/ci.yml", "node_modules/x/index.js", "tests/readme.txt",
	)
	got, err := Scan(noisy, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScan_CustomOptions(t *testing.T) {
	opts := Options{
		CompiledPattern: "",
		ScriptedPattern: "**/package.json",
		TestPattern:     "test/**/package.json",
		IgnoreDirs:      []string{"vendor"},
	}
	fsys := tree("src/Api/Api.csproj", "vendor/lib/package.json", "test/e2e/package.json")

	got, err := Scan(fsys, opts)
	require.NoError(t, err)
	assert.Equal(t, ProjectSignals{HasScriptedProjects: true, TestProjectPath: "test/e2e"}, got)
}

func TestScan_BadPattern(t *testing.T) {
	opts := DefaultOptions()
	opts.TestPattern = "tests/["
	_, err := Scan(tree("tests/a.csproj"), opts)
	assert.Error(t, err)
}
