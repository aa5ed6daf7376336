package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/Allie-Leth/ant-buffer/pkg/framing"
)

// Heap-profiles the frame build/parse hot loop; the profile should show zero
// allocations once the message and its storage exist.
func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	m := framing.NewMessage(make([]byte, 64))
	for i := 0; i < 10000; i++ {
		m.BeginMessage(uint8(i))
		for j := 0; j < 32; j++ {
			m.AppendByte(uint8(j))
		}
		m.FinalizeMessage()
		m.BeginRead(m.Size())
		for {
			if _, ok := m.NextByte(); !ok {
				break
			}
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
