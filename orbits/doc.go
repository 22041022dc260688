// Package orbits animates the four-body scene: a spinning sun, a moon and an
// earth on circular orbits, and a pulsing starfield.
//
// All animation state lives in AnimationState and is advanced only by Update.
// Transforms are rebuilt from scratch on every call; the accumulated angles and
// the pulse counter are the only values carried between frames.
package orbits
