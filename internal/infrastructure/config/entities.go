package config

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/cubesim/internal/domain/entity"
)

// CubeConfig configures the player cube
type CubeConfig struct {
	Spawn mgl64.Vec3 `json:"spawn"`
	Size  mgl64.Vec3 `json:"size"`
	Speed float64    `json:"speed"` // units per frame
	Color string     `json:"color"`
}

// CameraConfig configures the orbit camera
type CameraConfig struct {
	Spawn       mgl64.Vec3 `json:"spawn"`
	Sensitivity float64    `json:"sensitivity"` // mouse pixels per radian
	ResetOffset mgl64.Vec3 `json:"resetOffset"` // Y sign is randomised on reset
	FovDeg      float64    `json:"fovDeg"`
	Near        float64    `json:"near"`
	Far         float64    `json:"far"`
}

// PlayfieldConfig lists the static objects spawned with the cube
type PlayfieldConfig struct {
	Planes []PlaneConfig `json:"planes"`
	Lights []LightConfig `json:"lights"` // parented to the cube
}

type PlaneConfig struct {
	Normal   mgl64.Vec3 `json:"normal"`
	HalfSize float64    `json:"halfSize"`
	Color    string     `json:"color"`
}

type LightConfig struct {
	Offset    mgl64.Vec3 `json:"offset"`
	Intensity float64    `json:"intensity"`
}

// MenuConfig configures the main menu layout.
// Button sizes are in percent of the viewport width.
type MenuConfig struct {
	Title          string         `json:"title"`
	Buttons        []ButtonConfig `json:"buttons"`
	ButtonWidthVw  float64        `json:"buttonWidthVw"`
	ButtonHeightVw float64        `json:"buttonHeightVw"`
	Margin         float64        `json:"margin"` // pixels
}

type ButtonConfig struct {
	Action string `json:"action"` // playGame or dismiss
	Label  string `json:"label"`
}

// ParseAction maps the config action name to a button action
func (b ButtonConfig) ParseAction() (entity.ButtonAction, error) {
	switch b.Action {
	case "playGame":
		return entity.ActionPlayGame, nil
	case "dismiss":
		return entity.ActionDismiss, nil
	default:
		return 0, fmt.Errorf("unknown button action %q", b.Action)
	}
}

// ParseColor maps a palette name to a colour
func ParseColor(name string) (color.RGBA, error) {
	switch name {
	case "red":
		return entity.ColorRed, nil
	case "green":
		return entity.ColorGreen, nil
	case "pink":
		return entity.ColorPink, nil
	case "yellow":
		return entity.ColorYellow, nil
	default:
		return color.RGBA{}, fmt.Errorf("unknown colour %q", name)
	}
}
