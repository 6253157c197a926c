package metainfo

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/clockworkengineer/bencode-sub000/encode"
	"github.com/clockworkengineer/bencode-sub000/ir"
	"github.com/clockworkengineer/bencode-sub000/parse"
)

// PieceHashSize is the length of one SHA-1 piece hash.
const PieceHashSize = sha1.Size

type File struct {
	Path   []string
	Length int64
}

// Name joins the path components with slashes.
func (f *File) Name() string {
	return strings.Join(f.Path, "/")
}

type Info struct {
	Name        string
	PieceLength int64
	Pieces      string
	// Length is set for single file torrents, Files for multi file ones.
	Length  int64
	Files   []File
	Private bool
	Source  string
}

type MetaInfo struct {
	Announce     string
	AnnounceList [][]string
	Comment      string
	CreatedBy    string
	CreationDate time.Time
	Encoding     string
	Info         Info

	info *ir.Node
}

// Read extracts the metainfo held by node. The announce URL and the info
// name, piece length and pieces are required; everything else is optional.
func Read(node *ir.Node) (*MetaInfo, error) {
	res := &MetaInfo{}
	var err error
	if res.Announce, err = node.RequiredString("announce"); err != nil {
		return nil, err
	}
	if res.info, err = node.RequiredDictionary("info"); err != nil {
		return nil, err
	}
	if err := readInfo(&res.Info, res.info); err != nil {
		return nil, fmt.Errorf("info: %w", err)
	}
	if res.AnnounceList, err = announceList(node); err != nil {
		return nil, err
	}
	if res.Comment, err = optionalString(node, "comment"); err != nil {
		return nil, err
	}
	if res.CreatedBy, err = optionalString(node, "created by"); err != nil {
		return nil, err
	}
	if res.Encoding, err = optionalString(node, "encoding"); err != nil {
		return nil, err
	}
	date, err := node.OptionalInt("creation date")
	if err != nil {
		return nil, err
	}
	if date != nil {
		res.CreationDate = time.Unix(*date, 0).UTC()
	}
	return res, nil
}

// ReadFile parses the file at path and reads its metainfo.
func ReadFile(path string, opts ...parse.ParseOption) (*MetaInfo, error) {
	node, err := parse.ParseFile(path, opts...)
	if err != nil {
		return nil, err
	}
	mi, err := Read(node)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mi, nil
}

func readInfo(info *Info, node *ir.Node) error {
	var err error
	if info.Name, err = node.RequiredString("name"); err != nil {
		return err
	}
	if info.PieceLength, err = node.RequiredInt("piece length"); err != nil {
		return err
	}
	if info.Pieces, err = node.RequiredString("pieces"); err != nil {
		return err
	}
	if len(info.Pieces)%PieceHashSize != 0 {
		return fmt.Errorf("%w: %d", ErrPieces, len(info.Pieces))
	}
	if info.Source, err = optionalString(node, "source"); err != nil {
		return err
	}
	private, err := node.OptionalInt("private")
	if err != nil {
		return err
	}
	info.Private = private != nil && *private == 1

	length, err := node.OptionalInt("length")
	if err != nil {
		return err
	}
	files, err := node.OptionalList("files")
	if err != nil {
		return err
	}
	switch {
	case length != nil && files != nil:
		return ErrLengthAndFiles
	case length != nil:
		info.Length = *length
		return nil
	case files == nil:
		return ErrNoLengthNorFiles
	}
	info.Files = make([]File, len(files))
	for i, f := range files {
		if err := readFile(&info.Files[i], f); err != nil {
			return fmt.Errorf("files[%d]: %w", i, err)
		}
	}
	return nil
}

func readFile(f *File, node *ir.Node) error {
	var err error
	if f.Length, err = node.RequiredInt("length"); err != nil {
		return err
	}
	path, err := node.RequiredList("path")
	if err != nil {
		return err
	}
	f.Path = make([]string, len(path))
	for i, p := range path {
		s, ok := p.AsString()
		if !ok {
			return fmt.Errorf("%w: path[%d] is %s", ir.ErrWrongType, i, p.Type)
		}
		f.Path[i] = s
	}
	return nil
}

// announceList reads the tiers of backup trackers. Entries that are not
// strings are skipped.
func announceList(node *ir.Node) ([][]string, error) {
	tiers, err := node.OptionalList("announce-list")
	if err != nil || tiers == nil {
		return nil, err
	}
	res := make([][]string, 0, len(tiers))
	for _, tier := range tiers {
		urls, ok := tier.AsList()
		if !ok {
			continue
		}
		var t []string
		for _, u := range urls {
			if s, ok := u.AsString(); ok {
				t = append(t, s)
			}
		}
		if len(t) != 0 {
			res = append(res, t)
		}
	}
	return res, nil
}

func optionalString(node *ir.Node, key string) (string, error) {
	s, err := node.OptionalString(key)
	if s == nil {
		return "", err
	}
	return *s, nil
}

// InfoHash returns the SHA-1 of the canonical encoding of the info
// dictionary.
func (m *MetaInfo) InfoHash() [sha1.Size]byte {
	return sha1.Sum(encode.Bytes(m.info))
}

// TotalLength is the size of the payload in bytes.
func (m *MetaInfo) TotalLength() int64 {
	if m.Info.Files == nil {
		return m.Info.Length
	}
	var n int64
	for i := range m.Info.Files {
		n += m.Info.Files[i].Length
	}
	return n
}

// NumPieces returns the number of piece hashes.
func (i *Info) NumPieces() int {
	return len(i.Pieces) / PieceHashSize
}

// Piece returns the hash of piece n.
func (i *Info) Piece(n int) []byte {
	return []byte(i.Pieces[n*PieceHashSize : (n+1)*PieceHashSize])
}

// Trackers returns every tracker URL, the announce URL first, without
// duplicates.
func (m *MetaInfo) Trackers() []string {
	seen := map[string]bool{}
	var res []string
	add := func(u string) {
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		res = append(res, u)
	}
	add(m.Announce)
	for _, tier := range m.AnnounceList {
		for _, u := range tier {
			add(u)
		}
	}
	return res
}
