// Package remote serves a browser touch pad that feeds multi-touch samples into the game
package remote

import (
	"context"
	_ "embed"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/input"
	"github.com/lixenwraith/blocksgame/parameter"
)

var logger = golog.Child("[remote]")

const stride = parameter.RemotePointerStride

//go:embed static/pad.html
var padHTML []byte

// PointerSink consumes pointer samples; the result is the click acknowledgment
type PointerSink interface {
	HandlePointer(input.Sample) bool
}

// Server bridges websocket touch streams to a PointerSink
type Server struct {
	sink          PointerSink
	width, height float64
	onClick       func()

	engine   *gin.Engine
	upgrader websocket.Upgrader
	conns    atomic.Uint32
	active   atomic.Int32

	// Hijacked connections are invisible to http.Server.Shutdown
	mu      sync.Mutex
	streams map[*websocket.Conn]struct{}
	closed  bool
	wg      sync.WaitGroup
}

// NewServer creates a pad server for a logical canvas of the given size
func NewServer(sink PointerSink, width, height float64) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		sink:    sink,
		width:   width,
		height:  height,
		streams: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  parameter.RemoteMaxMessageSize,
			WriteBufferSize: parameter.RemoteMaxMessageSize,
			// The pad is served from this host; any origin on the LAN is accepted
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLog)
	r.GET("/", s.servePad)
	r.GET("/ws", s.serveStream)
	s.engine = r
	return s
}

// OnClick registers a callback fired when a down sample was acknowledged
func (s *Server) OnClick(fn func()) {
	s.onClick = fn
}

// Handler exposes the HTTP routes
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Active returns the number of connected pads
func (s *Server) Active() int {
	return int(s.active.Load())
}

// ListenAndServe serves on addr until ctx is done
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts on ln until ctx is done, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	logger.Infof("touch pad listening on http://%s/", ln.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), parameter.RemoteShutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	s.closeStreams()
	if err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// closeStreams disconnects every pad and waits for their held touches to be released
func (s *Server) closeStreams() {
	s.mu.Lock()
	s.closed = true
	for conn := range s.streams {
		conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// track registers conn for shutdown; false when the server is already closing
func (s *Server) track(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.streams[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(conn *websocket.Conn) {
	s.mu.Lock()
	delete(s.streams, conn)
	s.mu.Unlock()
	s.wg.Done()
}

func requestLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	logger.Debugf("%s %s %d %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}

func (s *Server) servePad(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", padHTML)
}

func (s *Server) serveStream(c *gin.Context) {
	if !c.IsWebsocket() {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warnf("upgrade failed: %v", err)
		return
	}

	if !s.track(conn) {
		conn.Close()
		return
	}
	defer s.untrack(conn)

	base := input.PointerID(s.conns.Add(1)) * stride
	s.active.Add(1)
	defer s.active.Add(-1)

	logger.Infof("pad connected from %s (pointers %d..%d)", c.Request.RemoteAddr, base, base+stride-1)
	s.stream(conn, base)
	logger.Infof("pad %s disconnected", c.Request.RemoteAddr)
}

// stream runs one connection; held touches are released when it ends
func (s *Server) stream(conn *websocket.Conn, base input.PointerID) {
	defer conn.Close()
	conn.SetReadLimit(parameter.RemoteMaxMessageSize)

	held := make(map[input.PointerID]bool)
	defer func() {
		for id := range held {
			s.sink.HandlePointer(input.Sample{Kind: input.SampleUp, Pointer: id})
		}
	}()

	var seq uint64
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("read: %v", err)
			}
			return
		}

		msg, err := decodeMessage(data)
		if err != nil {
			logger.Debugf("%v", err)
			continue
		}
		sample, err := msg.sample(base, s.width, s.height)
		if err != nil {
			logger.Debugf("rejected message: %v", err)
			continue
		}

		switch sample.Kind {
		case input.SampleDown:
			held[sample.Pointer] = true
		case input.SampleUp:
			delete(held, sample.Pointer)
		}

		click := s.sink.HandlePointer(sample)
		if click && sample.Kind == input.SampleDown && s.onClick != nil {
			s.onClick()
		}

		seq++
		out, err := json.Marshal(Ack{Seq: seq, Click: click})
		if err != nil {
			logger.Errorf("encode ack: %v", err)
			return
		}
		conn.SetWriteDeadline(time.Now().Add(parameter.RemoteWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, out); err != nil {
			logger.Debugf("write: %v", err)
			return
		}
	}
}
