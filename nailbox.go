// Package nailbox models a string-art nail box: a cube with an n x n grid
// of nails on five of its faces, and a thread sequence that is played back
// one pull at a time.
//
// # Nail Table
//
// NewBox places every nail in 3D, face by face in a fixed order
// (top, right, bottom, left, back), row by row, column by column:
//
//	box, err := nailbox.NewBox(nailbox.WithNailsPerSide(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pos, err := box.Position(nailbox.Address{Face: nailbox.FaceTop, Row: 0, Col: 3})
//
// Addresses are 0-based in code and 1-based in text. The label of the
// nail above is "(F1, R1, C4)".
//
// # Sequence Files
//
// A sequence file lists nails as whitespace-separated tokens:
//
//	(F1,R1,C1) (F1,R1,C2)
//	(F1,R2,C1)
//
// Every pair of consecutive tokens is one segment, so the file above holds
// two segments.
//
// # Playback
//
// A Player walks through the segments:
//
//	player := nailbox.NewPlayer(box)
//	if err := player.LoadString(content); err != nil {
//	    log.Fatal(err)
//	}
//	player.Next()
//	fmt.Println(player.Instruction()) // (F1, R1, C1) to (F1, R1, C2)
//
// Input surfaces can instead send events through Player.Handle, which
// returns the new Status for the instruction display.
package nailbox
