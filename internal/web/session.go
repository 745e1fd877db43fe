package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tomz197/skyfall/internal/loop"
	"github.com/tomz197/skyfall/internal/object"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	tickRate      = 60
	snapshotEvery = 2 // broadcast at tickRate/snapshotEvery Hz
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// cueCounter collects audio cues between broadcasts so the browser can play
// them. Only touched from the game loop goroutine.
type cueCounter struct {
	pending wireCues
}

func (c *cueCounter) Shoot()      { c.pending.Shoot++ }
func (c *cueCounter) Explode()    { c.pending.Explode++ }
func (c *cueCounter) Pickup()     { c.pending.Pickup++ }
func (c *cueCounter) MusicStart() { c.pending.Music = 1 }
func (c *cueCounter) MusicStop()  { c.pending.Music = -1 }

func (c *cueCounter) drain() wireCues {
	out := c.pending
	c.pending = wireCues{}
	return out
}

// session runs one game per WebSocket connection.
type session struct {
	conn  *websocket.Conn
	store loop.BestStore

	mu sync.Mutex
	in object.Input

	closed chan struct{}
	once   sync.Once
}

// Handler upgrades requests to WebSocket sessions. Each connection gets its
// own simulation; only the best score is shared, through the store.
func Handler(store loop.BestStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		s := &session{
			conn:   conn,
			store:  store,
			closed: make(chan struct{}),
		}
		go s.readPump()
		s.run()
	}
}

func (s *session) close() {
	s.once.Do(func() {
		close(s.closed)
		s.conn.Close()
	})
}

// readPump decodes client input messages and keeps the latest key state.
func (s *session) readPump() {
	defer s.close()

	s.conn.SetReadLimit(maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			return
		}
		var msg InputMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		s.mu.Lock()
		s.in = object.Input{
			Left:  msg.Left,
			Right: msg.Right,
			Boost: msg.Boost,
			Shoot: msg.Shoot,
			Pause: msg.Pause,
			Start: msg.Start,
		}
		s.mu.Unlock()
	}
}

func (s *session) input() object.Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in
}

// run owns the simulation: 60 Hz steps, snapshots broadcast every other tick.
func (s *session) run() {
	defer s.close()

	cues := &cueCounter{}
	state := loop.NewState(nil, cues)
	lastSaved := 0
	if s.store != nil {
		if best, err := s.store.Best(); err == nil {
			state.Best = best
			lastSaved = best
		}
	}

	clock := loop.NewClock(time.Now())
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()
	pinger := time.NewTicker(pingPeriod)
	defer pinger.Stop()

	var prev object.Input
	tick := 0

	for {
		select {
		case <-s.closed:
			s.saveBest(state, lastSaved)
			return

		case <-pinger.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.saveBest(state, lastSaved)
				return
			}

		case now := <-ticker.C:
			dt := clock.Tick(now)
			in := s.input()
			edged := in
			edged.Pause = in.Pause && !prev.Pause
			edged.Start = in.Start && !prev.Start
			prev = in

			wasPlaying := state.Phase == loop.PhasePlaying
			state.Frame(dt, edged)
			if wasPlaying && state.Phase == loop.PhaseGameOver {
				lastSaved = s.saveBest(state, lastSaved)
			}

			tick++
			if tick%snapshotEvery != 0 {
				continue
			}
			payload, err := msgpack.Marshal(toWire(state.Snapshot(), cues.drain()))
			if err != nil {
				log.Println("snapshot encode:", err)
				continue
			}
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, payload); err != nil {
				s.saveBest(state, lastSaved)
				return
			}
		}
	}
}

func (s *session) saveBest(state *loop.State, lastSaved int) int {
	if s.store == nil || state.Best <= lastSaved {
		return lastSaved
	}
	if err := s.store.SaveBest(state.Best); err != nil {
		log.Println("save best:", err)
		return lastSaved
	}
	return state.Best
}
