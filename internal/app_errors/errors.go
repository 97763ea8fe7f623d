package app_errors

import "errors"

var ErrTopicNotFound = errors.New("topic not found")
var ErrSubtopicNotFound = errors.New("subtopic not found")
var ErrSlideNotFound = errors.New("slide not found")
var ErrTemplateNotFound = errors.New("template not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrEmptyDeck = errors.New("no slides available")
var ErrInvalidSlide = errors.New("invalid slide")
var ErrUnknownTemplate = errors.New("unknown slide template")
var ErrNotImage = errors.New("not image")
var ErrFileSize = errors.New("file size error")
var ErrImageNotFound = errors.New("image not found")
