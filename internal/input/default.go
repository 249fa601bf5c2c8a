package input

import (
	"encoding/binary"
	"log"
	"os"
	"syscall"
)

// evKey is EV_KEY from linux/input-event-codes.h.
const evKey uint16 = 0x01

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Event is a raw key transition. Unlike terminal input this carries the
// release, which hold tails need.
type Event struct {
	Pressed  bool
	Released bool
	// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
	Code uint16
}

// ReadInput streams key transitions from an evdev device node into events.
func ReadInput(device string, events chan *Event) error {
	file, err := os.Open(device)
	if err != nil {
		return err
	}
	go func() {
		defer file.Close()

		var ev keyEvent
		for {
			err = binary.Read(file, binary.LittleEndian, &ev)
			if nil != err {
				log.Println(err, "unable to read keyboard input")
				return
			}
			if ev.Type != evKey {
				continue
			}
			events <- &Event{
				Pressed:  ev.Value == 1,
				Released: ev.Value == 0,
				Code:     ev.Code,
			}
		}
	}()
	return nil
}
