package awsctx

import "sync"

// Subscription は変更通知の購読解除ハンドル
type Subscription struct {
	hub *eventHub
	id  int
}

// Dispose は購読を解除する（多重呼び出しは無視）
func (s *Subscription) Dispose() {
	if s == nil || s.hub == nil {
		return
	}
	s.hub.unsubscribe(s.id)
	s.hub = nil
}

type listener struct {
	id int
	fn func(Snapshot)
}

// eventHub は登録順のリスナーリスト。通知は同期的に1変更につき1回行う
type eventHub struct {
	mu        sync.Mutex
	nextID    int
	listeners []listener
}

func newEventHub() *eventHub {
	return &eventHub{}
}

func (h *eventHub) subscribe(fn func(Snapshot)) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	h.listeners = append(h.listeners, listener{id: h.nextID, fn: fn})
	return &Subscription{hub: h, id: h.nextID}
}

func (h *eventHub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, l := range h.listeners {
		if l.id == id {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			return
		}
	}
}

// emit は登録順にリスナーを同期呼び出しする
// リスナー内でのロック再取得を避けるため、呼び出しはロック外で行う
func (h *eventHub) emit(s Snapshot) {
	h.mu.Lock()
	fns := make([]func(Snapshot), len(h.listeners))
	for i, l := range h.listeners {
		fns[i] = l.fn
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}
