package bigpicture

import (
	"bytes"
	"image"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/redmie/lutrisview/style"
)

// Notification displays a temporary message in the bottom-right corner.
// Show and PlaySound may be called from any goroutine.
type Notification struct {
	mu        sync.Mutex
	message   string
	startTime time.Time
	duration  time.Duration

	// Reused between frames, grown when a longer message needs it
	bg *ebiten.Image

	player *oto.Player
}

// NewNotification creates an empty notification
func NewNotification() *Notification {
	return &Notification{}
}

// Show displays message for duration
func (n *Notification) Show(message string, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.message = message
	n.startTime = time.Now()
	n.duration = duration
}

// ShowDefault displays message for the standard duration
func (n *Notification) ShowDefault(message string) {
	n.Show(message, style.NotificationDuration)
}

// IsVisible returns whether a message is currently shown
func (n *Notification) IsVisible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.message == "" {
		return false
	}
	return time.Since(n.startTime) < n.duration
}

// PlaySound plays sound data through a one-shot oto player.
// Sound data should be 48kHz stereo S16LE format.
func (n *Notification) PlaySound(soundData []byte) {
	if len(soundData) == 0 {
		return
	}

	ctx, err := sharedAudio().context()
	if err != nil {
		log.Printf("Warning: launch chime skipped: %v", err)
		return
	}

	n.mu.Lock()
	if n.player != nil {
		n.player.Close()
	}
	n.player = ctx.NewPlayer(bytes.NewReader(soundData))
	n.player.Play()
	n.mu.Unlock()
}

// Close releases the audio player
func (n *Notification) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.player != nil {
		n.player.Close()
		n.player = nil
	}
}

// Draw renders the message if it is visible
func (n *Notification) Draw(screen *ebiten.Image) {
	if !n.IsVisible() {
		return
	}
	n.mu.Lock()
	message := n.message
	n.mu.Unlock()

	bounds := screen.Bounds()
	face := *style.FontFace()
	textWidth, textHeight := text.Measure(message, face, 0)

	padding := style.OverlayPadding
	bgWidth := int(textWidth) + padding*2
	bgHeight := int(textHeight) + padding*2

	margin := style.OverlayMargin
	bgX := bounds.Dx() - bgWidth - margin
	bgY := bounds.Dy() - bgHeight - margin

	if n.bg == nil || n.bg.Bounds().Dx() < bgWidth || n.bg.Bounds().Dy() < bgHeight {
		n.bg = ebiten.NewImage(bgWidth, bgHeight)
	}
	n.bg.Clear()
	overlayBg := style.DimOverlay
	overlayBg.A = 153 // 60% opacity
	n.bg.Fill(overlayBg)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(bgX), float64(bgY))
	screen.DrawImage(n.bg.SubImage(image.Rect(0, 0, bgWidth, bgHeight)).(*ebiten.Image), opts)

	textOpts := &text.DrawOptions{}
	textOpts.GeoM.Translate(float64(bgX+padding), float64(bgY+padding))
	textOpts.ColorScale.ScaleWithColor(style.Text)
	text.Draw(screen, message, face, textOpts)
}
