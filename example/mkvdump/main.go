// Command mkvdump decodes one Matroska cluster and logs its blocks.
//
//	mkvdump -file movie.webm -offset 4521 -length 90210 -track 1 -codec V_VP8
package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"github.com/deepch/mkv/av"
	"github.com/deepch/mkv/format/mkv"
	"github.com/deepch/mkv/format/wsrelay"
	"github.com/deepch/mkv/metrics"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalln(err)
	}
	SetLevel(cfg.LogLevel)
	wsrelay.Debug = cfg.LogLevel == LogLevelDebug

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		log.Fatalln(err)
	}
	buf, err := cfg.Cluster(data)
	if err != nil {
		log.Fatalln(err)
	}

	demuxer, err := demux(cfg, buf)
	if err != nil {
		log.Fatalln(err)
	}
	pkts := dump(demuxer)

	if cfg.Listen == "" {
		return
	}

	mux := http.NewServeMux()
	metrics.Handle(mux)
	mux.HandleFunc("/relay", func(w http.ResponseWriter, r *http.Request) {
		if err := relay(w, r, demuxer.Streams(), pkts); err != nil {
			Warn("relay %s: %v", r.RemoteAddr, err)
		}
	})
	Info("serving /metrics and /relay on %s", cfg.Listen)
	log.Fatalln(http.ListenAndServe(cfg.Listen, mux))
}

func demux(cfg *Config, buf []byte) (*mkv.Demuxer, error) {
	demuxer := mkv.NewDemuxer(cfg.Capacity)
	demuxer.SetTimecodeScale(cfg.TimecodeScale)
	if cfg.Track != 0 {
		codec, ok := av.CodecTypeFromMatroska(cfg.Codec)
		if !ok && cfg.Codec != "" {
			Warn("codec %s not recognized, relaying track %d untyped", cfg.Codec, cfg.Track)
		}
		demuxer.AddTrack(cfg.Track, codec)
	}

	if err := demuxer.Feed(buf); err != nil {
		return nil, err
	}
	cluster := demuxer.Cluster()
	Info("cluster timecode=%d blocks=%d/%d", cluster.Timecode, cluster.Len(), cluster.Cap())
	return demuxer, nil
}

// dump logs the packets of the fed cluster and returns them for relaying.
func dump(demuxer *mkv.Demuxer) (pkts []av.Packet) {
	var i int
	for {
		pkt, err := demuxer.ReadPacket()
		if err != nil {
			if err != io.EOF {
				Error("read packet: %v", err)
			}
			return
		}
		if pkt.IsKeyFrame {
			i = 0
		}
		Info("track=%d idx=%d gop=%d key=%v time=%s dur=%s len=%d", pkt.Track, pkt.Idx, i, pkt.IsKeyFrame, pkt.Time, pkt.Duration, len(pkt.Data))
		i++
		pkts = append(pkts, pkt)
	}
}

func relay(w http.ResponseWriter, r *http.Request, streams []*mkv.Stream, pkts []av.Packet) error {
	m, err := wsrelay.NewMuxer(r, w)
	if err != nil {
		return err
	}
	defer m.WriteTrailer()

	Debug("relay session %s from %s", m.ID(), r.RemoteAddr)
	if err = m.WriteHeader(streams); err != nil {
		return err
	}
	for _, pkt := range pkts {
		if err = m.WritePacket(pkt); err != nil {
			return err
		}
	}
	return nil
}
