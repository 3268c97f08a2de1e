package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// StyleWatcher 监视样式文件，文件变化时重新加载
//
// 监视的是文件所在目录，这样编辑器“写临时文件再改名”的保存方式也能被捕获。
// 只保留最新一次成功加载的结果，宿主在自己的循环里用 Updates 非阻塞地取。
type StyleWatcher struct {
	w       *fsnotify.Watcher
	path    string
	updates chan *StyleConfig
	done    chan struct{}
}

// NewStyleWatcher 开始监视 path
func NewStyleWatcher(path string) (*StyleWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve style path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	sw := &StyleWatcher{
		w:       w,
		path:    abs,
		updates: make(chan *StyleConfig, 1),
		done:    make(chan struct{}),
	}
	go sw.eventLoop()
	return sw, nil
}

// Updates 重新加载后的配置
func (sw *StyleWatcher) Updates() <-chan *StyleConfig { return sw.updates }

// Path 被监视文件的绝对路径
func (sw *StyleWatcher) Path() string { return sw.path }

// Close 停止监视
func (sw *StyleWatcher) Close() error {
	err := sw.w.Close()
	<-sw.done
	return err
}

func (sw *StyleWatcher) eventLoop() {
	defer close(sw.done)
	for {
		select {
		case err, ok := <-sw.w.Errors:
			if !ok {
				return
			}
			log.Printf("[StyleWatcher] watch error: %v", err)

		case ev, ok := <-sw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != sw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			sw.reload()
		}
	}
}

func (sw *StyleWatcher) reload() {
	cfg, err := LoadStyleConfig(sw.path)
	if err != nil {
		// 保存过程中可能读到不完整的文件，等下一次事件
		log.Printf("[StyleWatcher] keep previous style: %v", err)
		return
	}
	log.Printf("[StyleWatcher] style reloaded from %s", sw.path)

	// 丢弃还没被取走的旧结果
	select {
	case <-sw.updates:
	default:
	}
	sw.updates <- cfg
}
