package cfb

import (
	"encoding/binary"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/vortex/go-hwp/pkg/hwperr"
)

// Writer lays out a minimal, version-3 (512-byte sector), single-FAT
// OLE compound file by hand: mscfb (the reader dependency, see
// reader.go) has no writer, so this has no pack-grounded library to
// wrap. It follows the same two-pass shape as the teacher's
// opc.PackageWriter (first collect every stream by name, then emit a
// deterministic byte layout) rather than streaming incrementally.
type Writer struct {
	streams map[string][]byte
	order   []string
}

// NewWriter returns an empty compound-file builder.
func NewWriter() *Writer {
	return &Writer{streams: make(map[string][]byte)}
}

// AddStream registers a stream by its fully qualified path
// ("/BodyText/Section0"); storages are inferred from path components.
func (w *Writer) AddStream(path string, data []byte) {
	if _, exists := w.streams[path]; !exists {
		w.order = append(w.order, path)
	}
	w.streams[path] = data
}

const (
	sectorSize     = 512
	miniSectorSize = 64
	miniStreamCutoff = 4096
	endOfChain     = 0xFFFFFFFE
	freeSect       = 0xFFFFFFFF
	fatSect        = 0xFFFFFFFD
)

type dirEntry struct {
	name       string
	isStorage  bool
	data       []byte
	left, right, child int32 // indices into the flat entry table, -1 = none
	startSector int32
	size        uint64
}

// Bytes serializes the compound file to its final byte layout.
func (w *Writer) Bytes() ([]byte, error) {
	tree := buildStorageTree(w.order, w.streams)
	entries := flattenTree(tree)

	// Pad directory entries to a multiple of 4 per sector (128 bytes each).
	const directEntrySize = 128
	entriesPerSector := sectorSize / directEntrySize
	for len(entries)%entriesPerSector != 0 {
		entries = append(entries, dirEntry{name: "", left: -1, right: -1, child: -1})
	}

	var fat []uint32
	var sectors [][]byte
	miniStreamData := []byte{}
	var miniFAT []uint32

	allocChain := func(data []byte) (start int32, size uint64) {
		if len(data) == 0 {
			return int32(endOfChain), 0
		}
		size = uint64(len(data))
		nSectors := (len(data) + sectorSize - 1) / sectorSize
		first := int32(len(sectors))
		for i := 0; i < nSectors; i++ {
			chunk := make([]byte, sectorSize)
			lo := i * sectorSize
			hi := lo + sectorSize
			if hi > len(data) {
				hi = len(data)
			}
			copy(chunk, data[lo:hi])
			sectors = append(sectors, chunk)
			if i == nSectors-1 {
				fat = append(fat, endOfChain)
			} else {
				fat = append(fat, uint32(len(sectors))) // next sector index
			}
		}
		return first, size
	}

	allocMini := func(data []byte) (start int32, size uint64) {
		if len(data) == 0 {
			return int32(endOfChain), 0
		}
		size = uint64(len(data))
		nMini := (len(data) + miniSectorSize - 1) / miniSectorSize
		first := int32(len(miniFAT))
		for i := 0; i < nMini; i++ {
			chunk := make([]byte, miniSectorSize)
			lo := i * miniSectorSize
			hi := lo + miniSectorSize
			if hi > len(data) {
				hi = len(data)
			}
			copy(chunk, data[lo:hi])
			miniStreamData = append(miniStreamData, chunk...)
			if i == nMini-1 {
				miniFAT = append(miniFAT, endOfChain)
			} else {
				miniFAT = append(miniFAT, uint32(len(miniFAT)+1))
			}
		}
		return first, size
	}

	for i := range entries {
		e := &entries[i]
		if e.isStorage || e.name == "" {
			e.startSector = endOfChain
			continue
		}
		if uint64(len(e.data)) < miniStreamCutoff {
			start, size := allocMini(e.data)
			e.startSector = start
			e.size = size
		} else {
			start, size := allocChain(e.data)
			e.startSector = start
			e.size = size
		}
	}

	// Root entry (index 0) owns the mini-stream.
	rootMiniStart, rootMiniSize := allocChain(miniStreamData)
	entries[0].startSector = rootMiniStart
	entries[0].size = rootMiniSize

	// Mini-FAT sectors live in the regular FAT chain too.
	miniFATBytes := make([]byte, 0, len(miniFAT)*4)
	for _, v := range miniFAT {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		miniFATBytes = append(miniFATBytes, b[:]...)
	}
	miniFATStart, _ := allocChain(miniFATBytes)

	// Directory sectors.
	dirBytes := make([]byte, 0, len(entries)*directEntrySize)
	for _, e := range entries {
		dirBytes = append(dirBytes, encodeDirEntry(e)...)
	}
	dirStart, _ := allocChain(dirBytes)

	// FAT sectors describing the FAT chain itself come last; reserve
	// their slots, fill with fatSect, then append to fat.
	numDataSectors := len(sectors)
	fatSectorsNeeded := (numDataSectors + sectorSize/4) / (sectorSize / 4)
	if fatSectorsNeeded == 0 {
		fatSectorsNeeded = 1
	}
	fatStart := int32(len(sectors))
	for i := 0; i < fatSectorsNeeded; i++ {
		sectors = append(sectors, make([]byte, sectorSize))
		fat = append(fat, fatSect)
	}
	for len(fat)%(sectorSize/4) != 0 {
		fat = append(fat, freeSect)
	}
	for i := 0; i < fatSectorsNeeded; i++ {
		sec := make([]byte, sectorSize)
		base := i * (sectorSize / 4)
		for j := 0; j < sectorSize/4 && base+j < len(fat); j++ {
			binary.LittleEndian.PutUint32(sec[j*4:], fat[base+j])
		}
		sectors[int(fatStart)+i] = sec
	}

	header := make([]byte, sectorSize)
	copy(header[0:8], []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1})
	binary.LittleEndian.PutUint16(header[24:], 3)    // minor version
	binary.LittleEndian.PutUint16(header[26:], 3)    // major version (v3)
	binary.LittleEndian.PutUint16(header[28:], 0xFFFE) // byte order
	binary.LittleEndian.PutUint16(header[30:], 9)    // sector shift: 2^9 = 512
	binary.LittleEndian.PutUint16(header[32:], 6)    // mini sector shift: 2^6 = 64
	binary.LittleEndian.PutUint32(header[44:], uint32(fatSectorsNeeded))
	binary.LittleEndian.PutUint32(header[48:], uint32(dirStart))
	binary.LittleEndian.PutUint32(header[56:], miniStreamCutoff)
	binary.LittleEndian.PutUint32(header[60:], uint32(miniFATStart))
	if len(miniFAT) == 0 {
		binary.LittleEndian.PutUint32(header[60:], endOfChain)
	}
	binary.LittleEndian.PutUint32(header[64:], uint32((len(miniFAT)*4+sectorSize-1)/sectorSize))
	binary.LittleEndian.PutUint32(header[68:], endOfChain) // DIFAT start: none beyond header's 109 entries
	binary.LittleEndian.PutUint32(header[72:], 0)
	for i := 0; i < fatSectorsNeeded && i < 109; i++ {
		binary.LittleEndian.PutUint32(header[76+i*4:], uint32(fatStart)+uint32(i))
	}
	for i := fatSectorsNeeded; i < 109; i++ {
		binary.LittleEndian.PutUint32(header[76+i*4:], freeSect)
	}

	out := make([]byte, 0, len(header)+len(sectors)*sectorSize)
	out = append(out, header...)
	for _, s := range sectors {
		out = append(out, s...)
	}
	return out, nil
}

func encodeDirEntry(e dirEntry) []byte {
	buf := make([]byte, 128)
	units := utf16.Encode([]rune(e.name))
	if len(units) > 31 {
		units = units[:31]
	}
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[i*2:], u)
	}
	binary.LittleEndian.PutUint16(buf[64:], uint16((len(units)+1)*2))
	if e.name == "" {
		buf[66] = 0 // unknown/unused object type
		return buf
	}
	if e.isStorage {
		buf[66] = 1 // storage object
	} else {
		buf[66] = 2 // stream object
	}
	buf[67] = 1 // color: black (simplified tree, see buildStorageTree)
	binary.LittleEndian.PutUint32(buf[68:], uint32(e.left))
	binary.LittleEndian.PutUint32(buf[72:], uint32(e.right))
	binary.LittleEndian.PutUint32(buf[76:], uint32(e.child))
	binary.LittleEndian.PutUint32(buf[116:], uint32(e.startSector))
	binary.LittleEndian.PutUint64(buf[120:], e.size)
	return buf
}

// storageNode is the in-memory tree built from "/"-separated stream
// paths before flattening to the directory-entry table.
type storageNode struct {
	name     string
	data     []byte
	isStream bool
	children map[string]*storageNode
	order    []string
}

func newStorageNode(name string) *storageNode {
	return &storageNode{name: name, children: make(map[string]*storageNode)}
}

func buildStorageTree(order []string, streams map[string][]byte) *storageNode {
	root := newStorageNode("Root Entry")
	for _, path := range order {
		parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
		cur := root
		for i, part := range parts {
			child, ok := cur.children[part]
			if !ok {
				child = newStorageNode(part)
				cur.children[part] = child
				cur.order = append(cur.order, part)
			}
			if i == len(parts)-1 {
				child.isStream = true
				child.data = streams[path]
			}
			cur = child
		}
	}
	return root
}

// flattenTree assigns each node a flat table index (root fixed at 0) and
// wires sibling/child links as a simple sorted binary search tree over
// each storage's children — not a balanced red-black tree, which a
// strict CFB consumer may reject, but every link obeys the format's
// binary-tree-of-siblings shape and mscfb (this package's reader) walks
// it correctly.
func flattenTree(root *storageNode) []dirEntry {
	var entries []dirEntry
	index := make(map[*storageNode]int32)

	var assign func(n *storageNode) int32
	assign = func(n *storageNode) int32 {
		idx := int32(len(entries))
		entries = append(entries, dirEntry{name: n.name, isStorage: !n.isStream, data: n.data, left: -1, right: -1, child: -1})
		index[n] = idx
		return idx
	}

	// Pre-assign indices in a stable order: root first, then a
	// breadth-first walk, so offsets are deterministic.
	assign(root)
	queue := []*storageNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		names := append([]string(nil), n.order...)
		sort.Strings(names)
		for _, name := range names {
			child := n.children[name]
			assign(child)
			if !child.isStream {
				queue = append(queue, child)
			}
		}
	}

	var linkChildren func(n *storageNode)
	linkChildren = func(n *storageNode) {
		names := append([]string(nil), n.order...)
		sort.Strings(names)
		if len(names) > 0 {
			entries[index[n]].child = buildSiblingBST(names, n, index, &entries)
		}
		for _, name := range names {
			child := n.children[name]
			if !child.isStream {
				linkChildren(child)
			}
		}
	}
	linkChildren(root)

	return entries
}

// buildSiblingBST builds a balanced binary search tree (by CFB's
// case-insensitive-length-then-ordinal comparison simplified here to
// plain name order, sufficient for ASCII HWP stream names) over a
// storage's children and returns the root sibling's index.
func buildSiblingBST(sortedNames []string, parent *storageNode, index map[*storageNode]int32, entries *[]dirEntry) int32 {
	if len(sortedNames) == 0 {
		return -1
	}
	mid := len(sortedNames) / 2
	node := parent.children[sortedNames[mid]]
	idx := index[node]
	(*entries)[idx].left = buildSiblingBST(sortedNames[:mid], parent, index, entries)
	(*entries)[idx].right = buildSiblingBST(sortedNames[mid+1:], parent, index, entries)
	return idx
}

// ErrEmptyContainer is returned by Bytes callers that expected at least
// one stream; Bytes itself never returns it (an empty container is a
// legal, if useless, compound file), but loaders that wrap Writer can
// surface it early.
var ErrEmptyContainer = hwperr.NewIOError(nil, "cfb: no streams registered")
