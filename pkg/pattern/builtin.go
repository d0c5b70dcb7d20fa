package pattern

// DefaultExcludes is the built-in exclusion list, always applied in
// addition to caller-supplied patterns. It covers paths that are not
// source text: version control and IDE metadata, build output and
// dependency directories, compiled binaries, minified or generated
// files, caches, lock files, local databases, media and archives.
var DefaultExcludes = []string{
	// version control metadata
	"**/.git",
	"**/.hg",
	"**/.svn",

	// IDE and editor metadata
	"**/.vs",
	"**/.idea",
	"**/.vscode",

	// build output and dependency directories
	"**/bin",
	"**/obj",
	"**/build",
	"**/dist",
	"**/out",
	"**/target",
	"**/node_modules",

	// compiled artifacts
	"**/*.exe",
	"**/*.dll",
	"**/*.pdb",
	"**/*.so",
	"**/*.dylib",
	"**/*.a",
	"**/*.o",
	"**/*.class",
	"**/*.pyc",
	"**/*.wasm",

	// minified and generated files
	"**/*.min.js",
	"**/*.min.css",
	"**/*.map",
	"**/*.g.cs",
	"**/*.designer.cs",

	// caches, locks and local databases
	"**/*.cache",
	"**/*.lock",
	"**/*.suo",
	"**/*.user",
	"**/*.db",
	"**/*.sqlite",
	"**/*.sqlite3",

	// media and fonts
	"**/*.png",
	"**/*.jpg",
	"**/*.jpeg",
	"**/*.gif",
	"**/*.bmp",
	"**/*.ico",
	"**/*.webp",
	"**/*.mp3",
	"**/*.wav",
	"**/*.mp4",
	"**/*.avi",
	"**/*.mov",
	"**/*.mkv",
	"**/*.woff",
	"**/*.woff2",
	"**/*.ttf",
	"**/*.eot",
	"**/*.otf",

	// archives and packages
	"**/*.zip",
	"**/*.tar",
	"**/*.gz",
	"**/*.tgz",
	"**/*.rar",
	"**/*.7z",
	"**/*.jar",
	"**/*.nupkg",
}
