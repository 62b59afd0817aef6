// Package scene defines the file formats myreality reads and writes.
//
// A [Scene] is the input: a named collection of somethings, each with an
// optional parent, a realm, a care value and some content. It can be written
// as JSON or YAML:
//
//	name: today
//	viewport: {width: 1280, height: 800}
//	somethings:
//	  - id: home
//	    realm: physical
//	    content: Kitchen table
//	  - id: tea
//	    parent_id: home
//	    realm: physical
//	    care: 0.8
//	    content: Morning tea
//
// A [Layout] is the output of the layout pipeline: every something with a
// world position, its depth in the parent tree, an opacity and the camera
// that frames the whole scene. Layouts are always JSON so they can be cached
// and handed to other tools unchanged.
//
// # Reading and Writing
//
//	s, err := scene.ReadFile("today.yaml")
//	if err != nil {
//	    return err
//	}
//	s.AssignMissingIDs()
//	if err := s.Validate(); err != nil {
//	    return err
//	}
//
//	data, err := scene.MarshalLayout(layout)
//	l, err := scene.UnmarshalLayout(data)
//
// Errors carry codes from pkg/errors: a missing file is FILE_NOT_FOUND, a
// file that does not decode or fails validation is INVALID_SCENE, and an
// unknown extension is INVALID_FORMAT.
package scene
