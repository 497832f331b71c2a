package wsrelay

import (
	"encoding/json"
	"log"
	"net"
	"net/http"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/google/uuid"

	"github.com/deepch/mkv/av"
	"github.com/deepch/mkv/format/mkv"
	"github.com/deepch/mkv/metrics"
)

var Debug bool

// Header is sent once, as a text message, before any packet frame.
type Header struct {
	Session string       `json:"session"`
	Streams []StreamInfo `json:"streams"`
}

type StreamInfo struct {
	Idx   int8   `json:"idx"`
	Track uint64 `json:"track"`
	Codec string `json:"codec"`
}

// Muxer relays demuxed packets to one websocket client.
type Muxer struct {
	id     uuid.UUID
	r      *http.Request
	w      http.ResponseWriter
	conn   net.Conn
	closed sync.Once
}

// NewMuxer upgrades the request to a websocket. Client messages are read
// and dropped until the connection closes.
func NewMuxer(r *http.Request, w http.ResponseWriter) (*Muxer, error) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		return nil, err
	}
	go func() {
		defer func() {
			conn.Close()
		}()
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				return
			}
		}
	}()

	m := NewMuxerConn(conn)
	m.r = r
	m.w = w
	return m, nil
}

// NewMuxerConn wraps an already upgraded server side connection.
func NewMuxerConn(conn net.Conn) *Muxer {
	metrics.RelaySessions.Inc()
	return &Muxer{
		id:   uuid.New(),
		conn: conn,
	}
}

// ID identifies the relay session; it is announced in the Header.
func (m *Muxer) ID() uuid.UUID {
	return m.id
}

func (m *Muxer) WriteHeader(streams []*mkv.Stream) (err error) {
	hdr := Header{Session: m.id.String()}
	for _, stream := range streams {
		info := StreamInfo{Idx: stream.Idx(), Track: stream.Track}
		if stream.Codec != 0 {
			info.Codec = stream.Codec.String()
		}
		hdr.Streams = append(hdr.Streams, info)
	}

	meta, err := json.Marshal(hdr)
	if err != nil {
		return
	}

	return wsutil.WriteServerText(m.conn, meta)
}

func (m *Muxer) WritePacket(pkt av.Packet) (err error) {
	if err = wsutil.WriteServerBinary(m.conn, EncodeFrame(pkt)); err != nil {
		return
	}
	metrics.RelayFramesSent.Inc()
	if Debug {
		log.Printf("wsrelay: %s idx=%d time=%s len=%d", m.id, pkt.Idx, pkt.Time, len(pkt.Data))
	}

	return
}

func (m *Muxer) WriteTrailer() (err error) {
	m.closed.Do(func() {
		metrics.RelaySessions.Dec()
		err = m.conn.Close()
	})
	return
}
