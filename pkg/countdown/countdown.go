package countdown

import (
	"sync"
	"time"
)

// Snapshot hedefe kalan sürenin gün/saat/dakika/saniye dökümü.
type Snapshot struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Remaining hedefe kalan süreyi hesaplar. Hedef geçmişse (veya tam şu an
// ise) ikinci dönüş değeri false'tur ve geri sayım gösterilmez.
func Remaining(target, now time.Time) (Snapshot, bool) {
	delta := target.Sub(now)
	if delta <= 0 {
		return Snapshot{}, false
	}
	ms := delta.Milliseconds()
	return Snapshot{
		Days:    int(ms / 86400000),
		Hours:   int(ms/3600000) % 24,
		Minutes: int(ms/60000) % 60,
		Seconds: int(ms/1000) % 60,
	}, true
}

// RemainingFromISO ISO 8601 hedef tarihten kalan süreyi hesaplar.
// Bozuk tarih "süresi dolmuş" sayılır, hata değildir.
func RemainingFromISO(target string, now time.Time) (Snapshot, bool) {
	t, err := time.Parse(time.RFC3339, target)
	if err != nil {
		// Saniye hassasiyetsiz yerel biçimlere (datetime-local) tolerans.
		t, err = time.Parse("2006-01-02T15:04", target)
		if err != nil {
			return Snapshot{}, false
		}
	}
	return Remaining(t, now)
}

// Engine saniyede bir Snapshot yayan geri sayım motoru.
//
// İki durumludur: Counting ve Expired. Hedef geçildiğinde kanal kapanır ve
// başka tick yayılmaz. Stop her durumda güvenlidir ve zamanlayıcıyı sızdırmadan
// iptal eder; Reset yeni hedefle motoru anında yeniden başlatır. Durum
// render oturumuna özeldir, hiçbir yere persist edilmez.
type Engine struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time

	target time.Time
	out    chan Snapshot
	cancel chan struct{}
}

// NewEngine verilen hedef için motor oluşturur. Tick aralığı 1 saniyedir.
func NewEngine(target time.Time) *Engine {
	return newEngine(target, time.Second, time.Now)
}

// newEngine testlerin aralığı ve saati enjekte edebilmesi için iç kurucu.
func newEngine(target time.Time, interval time.Duration, now func() time.Time) *Engine {
	return &Engine{interval: interval, now: now, target: target}
}

// Start geri sayımı başlatır ve snapshot kanalını döndürür.
// Hedef zaten geçmişse kanal hiçbir değer yaymadan kapanır (Expired).
// Kanal, hedef geçildiğinde veya Stop çağrıldığında kapanır.
func (e *Engine) Start() <-chan Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()

	out := make(chan Snapshot, 1)
	cancel := make(chan struct{})
	e.out = out
	e.cancel = cancel

	go e.run(e.target, out, cancel)
	return out
}

// Reset hedefi değiştirir ve sayımı yeni hedeften anında yeniden başlatır.
// Eski zamanlayıcı iptal edilir; bayat gösterim kalmaz.
func (e *Engine) Reset(target time.Time) <-chan Snapshot {
	e.mu.Lock()
	e.target = target
	e.mu.Unlock()
	return e.Start()
}

// Stop aktif zamanlayıcıyı iptal eder. Tekrarlı çağrı güvenlidir.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *Engine) stopLocked() {
	if e.cancel != nil {
		close(e.cancel)
		e.cancel = nil
		e.out = nil
	}
}

func (e *Engine) run(target time.Time, out chan<- Snapshot, cancel <-chan struct{}) {
	defer close(out)

	// İlk değer tick beklemeden hemen yayılır.
	snap, ok := Remaining(target, e.now())
	if !ok {
		return // Expired: hiç değer yaymadan biter, tick kurulmaz.
	}
	select {
	case out <- snap:
	case <-cancel:
		return
	}

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-ticker.C:
			snap, ok := Remaining(target, e.now())
			if !ok {
				return // hedef geçildi, sayım durur
			}
			select {
			case out <- snap:
			case <-cancel:
				return
			default:
				// Tüketici geride kaldıysa tick atlanır; motor bloklanmaz.
			}
		}
	}
}
