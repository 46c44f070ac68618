package snowflake

import (
	"sync"
	"testing"
	"time"
)

// 1️⃣ 基础测试：能不能生成 ID
func TestGenID(t *testing.T) {
	id := GenID()
	if id <= 0 {
		t.Fatalf("expected id > 0, got %d", id)
	}
}

// 2️⃣ 并发测试：多 goroutine 生成不重复
func TestGenID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 5000
		total      = goroutines * perRoutine
	)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		ids  = make(map[int64]struct{}, total)
		dups int
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					dups++
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if dups > 0 {
		t.Fatalf("found %d duplicate ids", dups)
	}
}

// 3️⃣ 顺序性测试：feed 按 ID 倒序依赖这一点
func TestGenID_Order(t *testing.T) {
	prev := GenID()

	for i := 0; i < 1000; i++ {
		curr := GenID()
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}

// 4️⃣ ID 内嵌的时间与生成时间一致(毫秒)
func TestTime(t *testing.T) {
	before := time.Now().Add(-time.Millisecond)
	id := GenID()
	after := time.Now().Add(time.Millisecond)

	got := Time(id)
	if got.Before(before) || got.After(after) {
		t.Fatalf("id time %v not within [%v, %v]", got, before, after)
	}
}
