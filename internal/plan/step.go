// Package plan defines the ordered sequence of effector and client-adapter
// operations produced by the cross-seed and move planners (spec §4.6-§4.7),
// deferring execution so callers can inspect, log, or dry-run a plan before
// anything touches disk or the torrent client.
package plan

// Kind identifies which operation a Step performs.
type Kind int

const (
	Mkdirp Kind = iota
	Symlink
	CreateOrUpdateSymlink
	Rename
	CopyTree
	CopyFile
	RemoveFile
	RemoveTree
	AddTorrent
	PauseTorrent
	ResumeTorrent
	MoveTorrent
)

func (k Kind) String() string {
	switch k {
	case Mkdirp:
		return "mkdirp"
	case Symlink:
		return "symlink"
	case CreateOrUpdateSymlink:
		return "create_or_update_symlink"
	case Rename:
		return "rename"
	case CopyTree:
		return "copy_tree"
	case CopyFile:
		return "copy_file"
	case RemoveFile:
		return "remove_file"
	case RemoveTree:
		return "remove_tree"
	case AddTorrent:
		return "add_torrent"
	case PauseTorrent:
		return "pause_torrent"
	case ResumeTorrent:
		return "resume_torrent"
	case MoveTorrent:
		return "move_torrent"
	default:
		return "unknown"
	}
}

// Step is one planned operation. Only the fields relevant to Kind are
// populated; this mirrors the corpus's convention of a small tagged struct
// over a deep interface hierarchy for data that is built once, inspected
// (logged, dry-run printed), and executed once.
type Step struct {
	Kind Kind

	// Filesystem operands.
	Path   string // Mkdirp, RemoveFile, RemoveTree
	Link   string // Symlink, CreateOrUpdateSymlink
	Target string // Symlink, CreateOrUpdateSymlink
	Src    string // Rename, CopyTree, CopyFile
	Dst    string // Rename, CopyTree, CopyFile

	// Torrent-client operands.
	MetainfoPath string // AddTorrent
	SeedRoot     string // AddTorrent
	TorrentID    string // PauseTorrent, ResumeTorrent, MoveTorrent
	NewBasePath  string // MoveTorrent
}

// A Plan is an ordered sequence of Steps; order is significant and must be
// preserved through execution.
type Plan []Step

func MkdirpStep(path string) Step { return Step{Kind: Mkdirp, Path: path} }

func SymlinkStep(link, target string) Step {
	return Step{Kind: Symlink, Link: link, Target: target}
}

func CreateOrUpdateSymlinkStep(link, target string) Step {
	return Step{Kind: CreateOrUpdateSymlink, Link: link, Target: target}
}

func RenameStep(src, dst string) Step { return Step{Kind: Rename, Src: src, Dst: dst} }

func CopyTreeStep(src, dst string) Step { return Step{Kind: CopyTree, Src: src, Dst: dst} }

func CopyFileStep(src, dst string) Step { return Step{Kind: CopyFile, Src: src, Dst: dst} }

func RemoveFileStep(path string) Step { return Step{Kind: RemoveFile, Path: path} }

func RemoveTreeStep(path string) Step { return Step{Kind: RemoveTree, Path: path} }

func AddTorrentStep(metainfoPath, seedRoot string) Step {
	return Step{Kind: AddTorrent, MetainfoPath: metainfoPath, SeedRoot: seedRoot}
}

func PauseTorrentStep(id string) Step { return Step{Kind: PauseTorrent, TorrentID: id} }

func ResumeTorrentStep(id string) Step { return Step{Kind: ResumeTorrent, TorrentID: id} }

func MoveTorrentStep(id, newBasePath string) Step {
	return Step{Kind: MoveTorrent, TorrentID: id, NewBasePath: newBasePath}
}
