package proto_test

import (
	"testing"

	pb "github.com/mo-shahab/go-pong/proto"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

func TestFrameRoundTrip(t *testing.T) {
	in := &pb.Message{
		Type:        pb.MsgType_frame,
		MessageType: &pb.Message_Frame{Frame: &pb.FrameMessage{
			Tick:       42,
			Ball:       &pb.Ball{X: 351.5, Y: -0.25, Radius: 8},
			LeftPaddle: 220,
			LeftScore:  3,
			RightScore: 11,
			Paused:     true,
		}},
	}

	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &pb.Message{}
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Errorf("expected %v, got %v", in, out)
	}
	if got := out.GetType().String(); got != "frame" {
		t.Errorf("expected type name frame, got %q", got)
	}
	if out.GetScore() != nil {
		t.Error("expected only the frame payload to be set")
	}
}

func TestEmptyPayloadStillSelectsType(t *testing.T) {
	b, err := proto.Marshal(&pb.Message{
		Type:        pb.MsgType_pause,
		MessageType: &pb.Message_Pause{Pause: &pb.PauseMessage{}},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	out := &pb.Message{}
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.GetPause() == nil || out.GetPause().GetPaused() {
		t.Errorf("expected an unpaused pause message, got %v", out)
	}
}

func TestUnknownFieldsAreSkipped(t *testing.T) {
	b, err := proto.Marshal(&pb.Message{
		Type:        pb.MsgType_error,
		MessageType: &pb.Message_Error{Error: &pb.ErrorMessage{Error: "boom"}},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "newer field")

	out := &pb.Message{}
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := out.GetError().GetError(); got != "boom" {
		t.Errorf("expected error text %q, got %q", "boom", got)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	b, err := proto.Marshal(&pb.Message{
		Type:        pb.MsgType_welcome,
		MessageType: &pb.Message_Welcome{Welcome: &pb.WelcomeMessage{ClientId: "abc", Width: 700}},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := proto.Unmarshal(b[:len(b)-3], &pb.Message{}); err == nil {
		t.Error("expected an error for truncated input")
	}
}
