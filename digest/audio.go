// This file is part of Mikey.
//
// Mikey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mikey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mikey.  If not, see <https://www.gnu.org/licenses/>.

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/lynxemu/mikey/curated"
	"github.com/lynxemu/mikey/hardware/mikey/timers"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 + sha1.Size

// to allow us to create digests on audio streams longer than
// audioBufferLength, we'll stuff the previous digest value into the first part
// of the buffer array and make sure we include it when we create the next
// digest value
const audioBufferStart = sha1.Size

// Audio implements the runner.Recorder interface.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

// Hash implements the Digest interface.
func (dig Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

func (dig Audio) String() string {
	return dig.Hash()
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	for i := range dig.buffer {
		dig.buffer[i] = 0
	}
	dig.bufferCt = audioBufferStart
}

// SetAudio implements the runner.Recorder interface. Audio output is eight
// bits wide so only the low byte of each channel is used.
func (dig *Audio) SetAudio(channels [timers.NumAudio]int16) error {
	for _, v := range channels {
		dig.buffer[dig.bufferCt] = uint8(v)
		dig.bufferCt++

		if dig.bufferCt >= audioBufferLength {
			if err := dig.flush(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (dig *Audio) flush() error {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	n := copy(dig.buffer, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf("digest: audio: %v", "digest error while flushing audio stream")
	}
	dig.bufferCt = audioBufferStart
	return nil
}

// EndMixing implements the runner.Recorder interface. Any data that has not
// yet been included in the digest is flushed.
func (dig *Audio) EndMixing() error {
	if dig.bufferCt > audioBufferStart {
		return dig.flush()
	}
	return nil
}
