// Package metainfo reads BitTorrent metainfo (.torrent) documents from
// parsed bencode trees.
//
// A metainfo document is a dictionary with an "announce" tracker URL and
// an "info" dictionary describing the payload. The info hash identifying
// a torrent is the SHA-1 of the canonical encoding of the info dictionary.
package metainfo
